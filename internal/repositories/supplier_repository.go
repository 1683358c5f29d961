package repositories

import (
	"context"
	"strings"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"
	"optic-backend/internal/timeutil"

	"github.com/google/uuid"
)

type SupplierRepository struct {
	Store *storage.Store
}

func NewSupplierRepository(store *storage.Store) *SupplierRepository {
	return &SupplierRepository{Store: store}
}

func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) error {
	s.ID = uuid.NewString()
	s.CreatedAt = timeutil.Now()
	return r.Store.Update("suppliers", func(tx *storage.Tx) error {
		tx.Snap.Suppliers = append([]models.Supplier{*s}, tx.Snap.Suppliers...)
		return nil
	})
}

func (r *SupplierRepository) Get(ctx context.Context, id string) (*models.Supplier, error) {
	var found *models.Supplier
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Suppliers {
			if snap.Suppliers[i].ID == id {
				s := snap.Suppliers[i]
				found = &s
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	r.Store.View(func(snap *storage.Snapshot) {
		suppliers = append(suppliers, snap.Suppliers...)
	})
	return suppliers, nil
}

func (r *SupplierRepository) Search(ctx context.Context, query string) ([]models.Supplier, error) {
	q := strings.ToLower(query)
	var suppliers []models.Supplier
	r.Store.View(func(snap *storage.Snapshot) {
		for _, s := range snap.Suppliers {
			if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(s.Phone, query) {
				suppliers = append(suppliers, s)
			}
		}
	})
	return suppliers, nil
}

func (r *SupplierRepository) Replace(ctx context.Context, s *models.Supplier) error {
	return r.Store.Update("suppliers", func(tx *storage.Tx) error {
		for i := range tx.Snap.Suppliers {
			if tx.Snap.Suppliers[i].ID == s.ID {
				tx.Snap.Suppliers[i] = *s
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("suppliers", func(tx *storage.Tx) error {
		kept := tx.Snap.Suppliers[:0]
		removed := false
		for _, s := range tx.Snap.Suppliers {
			if s.ID == id {
				removed = true
				continue
			}
			kept = append(kept, s)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Suppliers = kept
		return nil
	})
}
