package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"optic-backend/internal/metrics"
)

// Store owns the in-memory snapshot. The original demo ran single
// threaded; behind an HTTP server the snapshot needs a lock, and the
// sale sequence becomes an authoritative counter incremented under
// that lock instead of being derived from the list length.
type Store struct {
	mu       sync.RWMutex
	path     string
	snap     Snapshot
	saleSeq  int
	onChange []func(collection string)
}

// Tx is the view of the snapshot handed to an update callback. The
// exclusive lock is held for the whole callback, so a reader never
// observes a partially applied mutation.
type Tx struct {
	Snap  *Snapshot
	store *Store
}

// NextSaleID returns the next human-readable sale identifier of the
// form C + 4-digit zero-padded sequence.
func (tx *Tx) NextSaleID() string {
	tx.store.saleSeq++
	return fmt.Sprintf("C%04d", tx.store.saleSeq)
}

// Open loads the snapshot from path (seeding defaults when the file is
// absent or corrupt) and primes the sale counter from the highest
// sequential id already present.
func Open(path string, defaults Snapshot) *Store {
	s := &Store{
		path: path,
		snap: Load(path, defaults),
	}
	for _, sale := range s.snap.Sales {
		if n, ok := parseSaleSeq(sale.ID); ok && n > s.saleSeq {
			s.saleSeq = n
		}
	}
	if len(s.snap.Sales) > s.saleSeq {
		s.saleSeq = len(s.snap.Sales)
	}
	return s
}

func parseSaleSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, "C") {
		return 0, false
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// OnChange registers a hook invoked after every persisted mutation
// with the name of the collection that changed.
func (s *Store) OnChange(fn func(collection string)) {
	s.onChange = append(s.onChange, fn)
}

// View runs fn under a shared lock. The callback must not retain the
// snapshot pointer past its return.
func (s *Store) View(fn func(snap *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.snap)
}

// Update runs fn under the exclusive lock and, if it succeeds, rewrites
// the whole snapshot file. A failed save leaves the in-memory state
// applied (matching the source behavior) and surfaces the error to the
// caller.
func (s *Store) Update(collection string, fn func(tx *Tx) error) error {
	s.mu.Lock()
	err := fn(&Tx{Snap: &s.snap, store: s})
	if err != nil {
		s.mu.Unlock()
		return err
	}
	saveErr := Save(s.path, &s.snap)
	s.mu.Unlock()

	if saveErr != nil {
		metrics.SnapshotSavesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("persist snapshot: %w", saveErr)
	}
	metrics.SnapshotSavesTotal.WithLabelValues("ok").Inc()
	for _, fn := range s.onChange {
		fn(collection)
	}
	return nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Counts returns per-collection record counts for health reporting.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"customers":       len(s.snap.Customers),
		"products":        len(s.snap.Products),
		"suppliers":       len(s.snap.Suppliers),
		"staff":           len(s.snap.Staff),
		"sales":           len(s.snap.Sales),
		"purchase_orders": len(s.snap.PurchaseOrders),
		"appointments":    len(s.snap.Appointments),
	}
}

// Export serializes the current snapshot, for backups.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return exportJSON(&s.snap)
}
