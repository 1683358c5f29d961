package handlers

import (
	"net/http"

	"optic-backend/internal/health"
	"optic-backend/internal/monitoring"
	"optic-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}

// HealthDetailed adds host resource usage to the basic probe.
func (h *HealthHandler) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, map[string]interface{}{
		"status":   status.Status,
		"snapshot": status.Snapshot,
		"system":   monitoring.CollectSystemStats(),
	})
}
