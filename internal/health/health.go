package health

import (
	"os"
	"time"

	"optic-backend/internal/storage"
)

type HealthChecker struct {
	store *storage.Store
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Snapshot SnapshotHealth `json:"snapshot"`
}

type SnapshotHealth struct {
	Status       string         `json:"status"`
	Path         string         `json:"path"`
	SizeBytes    int64          `json:"size_bytes"`
	ModifiedAt   string         `json:"modified_at,omitempty"`
	ResponseTime int64          `json:"response_time_ms"`
	Counts       map[string]int `json:"counts"`
}

func NewHealthChecker(store *storage.Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	snapHealth := h.checkSnapshot()

	status := "healthy"
	if snapHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Snapshot: snapHealth,
	}
}

func (h *HealthChecker) checkSnapshot() SnapshotHealth {
	start := time.Now()
	counts := h.store.Counts()

	out := SnapshotHealth{
		Status: "healthy",
		Path:   h.store.Path(),
		Counts: counts,
	}

	info, err := os.Stat(h.store.Path())
	if err != nil {
		// Missing file before the first write is still a working store
		if !os.IsNotExist(err) {
			out.Status = "unhealthy"
		}
	} else {
		out.SizeBytes = info.Size()
		out.ModifiedAt = info.ModTime().UTC().Format(time.RFC3339)
	}

	out.ResponseTime = time.Since(start).Milliseconds()
	return out
}
