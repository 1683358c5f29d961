package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"optic-backend/internal/models"
)

// Snapshot is the whole persisted database: every collection plus the
// shop settings, serialized as one JSON blob. The blob is overwritten
// wholesale on every mutation; there are no partial writes.
type Snapshot struct {
	Customers      []models.Customer      `json:"customers"`
	Products       []models.Product       `json:"products"`
	Suppliers      []models.Supplier      `json:"suppliers"`
	Staff          []models.StaffMember   `json:"staff"`
	Sales          []models.Sale          `json:"sales"`
	PurchaseOrders []models.PurchaseOrder `json:"purchase_orders"`
	Appointments   []models.Appointment   `json:"appointments"`
	Settings       models.ShopSettings    `json:"settings"`
}

// Load reads the snapshot file. For each top-level key the stored
// value is used when present, the default otherwise. A blob that fails
// to parse is logged and replaced entirely by the defaults; there is
// no partial recovery of a corrupt file.
func Load(path string, defaults Snapshot) Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Storage] Failed to read %s: %v, using seed data", path, err)
		}
		return defaults
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("[Storage] Corrupt snapshot %s: %v, using seed data", path, err)
		return defaults
	}

	snap := defaults
	ok := true
	decode := func(key string, dst interface{}) {
		msg, present := raw[key]
		if !present {
			return
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			log.Printf("[Storage] Corrupt %q in snapshot: %v, using seed data", key, err)
			ok = false
		}
	}

	decode("customers", &snap.Customers)
	decode("products", &snap.Products)
	decode("suppliers", &snap.Suppliers)
	decode("staff", &snap.Staff)
	decode("sales", &snap.Sales)
	decode("purchase_orders", &snap.PurchaseOrders)
	decode("appointments", &snap.Appointments)
	decode("settings", &snap.Settings)

	if !ok {
		return defaults
	}
	return snap
}

// Save serializes the full snapshot and atomically replaces the file.
// Write errors are returned to the caller and surface on the mutating
// request.
func Save(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func exportJSON(snap *Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}
