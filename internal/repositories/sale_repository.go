package repositories

import (
	"context"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"
)

type SaleRepository struct {
	Store *storage.Store
}

func NewSaleRepository(store *storage.Store) *SaleRepository {
	return &SaleRepository{Store: store}
}

// Create assigns the sale's sequential identifier and prepends it to
// the list, both under the same exclusive transaction so two
// near-simultaneous completions cannot share an id.
func (r *SaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.Store.Update("sales", func(tx *storage.Tx) error {
		sale.ID = tx.NextSaleID()
		tx.Snap.Sales = append([]models.Sale{*sale}, tx.Snap.Sales...)
		return nil
	})
}

func (r *SaleRepository) Get(ctx context.Context, id string) (*models.Sale, error) {
	var found *models.Sale
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Sales {
			if snap.Sales[i].ID == id {
				s := snap.Sales[i]
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

func (r *SaleRepository) List(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	r.Store.View(func(snap *storage.Snapshot) {
		sales = append(sales, snap.Sales...)
	})
	return sales, nil
}

func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Sale, error) {
	var sales []models.Sale
	r.Store.View(func(snap *storage.Snapshot) {
		for _, s := range snap.Sales {
			if s.CustomerID == customerID {
				sales = append(sales, s)
			}
		}
	})
	return sales, nil
}

func (r *SaleRepository) Replace(ctx context.Context, sale *models.Sale) error {
	return r.Store.Update("sales", func(tx *storage.Tx) error {
		for i := range tx.Snap.Sales {
			if tx.Snap.Sales[i].ID == sale.ID {
				tx.Snap.Sales[i] = *sale
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the sale unconditionally; there is no archival and no
// check on its payment state.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("sales", func(tx *storage.Tx) error {
		kept := tx.Snap.Sales[:0]
		removed := false
		for _, s := range tx.Snap.Sales {
			if s.ID == id {
				removed = true
				continue
			}
			kept = append(kept, s)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Sales = kept
		return nil
	})
}
