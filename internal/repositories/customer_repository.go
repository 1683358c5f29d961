package repositories

import (
	"context"
	"strings"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"
	"optic-backend/internal/timeutil"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	Store *storage.Store
}

func NewCustomerRepository(store *storage.Store) *CustomerRepository {
	return &CustomerRepository{Store: store}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	c.ID = uuid.NewString()
	c.CreatedAt = timeutil.Now()
	return r.Store.Update("customers", func(tx *storage.Tx) error {
		tx.Snap.Customers = append([]models.Customer{*c}, tx.Snap.Customers...)
		return nil
	})
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	var found *models.Customer
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Customers {
			if snap.Customers[i].ID == id {
				c := snap.Customers[i]
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	r.Store.View(func(snap *storage.Snapshot) {
		customers = append(customers, snap.Customers...)
	})
	return customers, nil
}

// Search matches a case-insensitive substring of the display name or
// the phone number.
func (r *CustomerRepository) Search(ctx context.Context, query string) ([]models.Customer, error) {
	q := strings.ToLower(query)
	var customers []models.Customer
	r.Store.View(func(snap *storage.Snapshot) {
		for _, c := range snap.Customers {
			name := strings.ToLower(c.DisplayName())
			if strings.Contains(name, q) || strings.Contains(strings.ToLower(c.Phone), q) {
				customers = append(customers, c)
			}
		}
	})
	return customers, nil
}

func (r *CustomerRepository) Replace(ctx context.Context, c *models.Customer) error {
	return r.Store.Update("customers", func(tx *storage.Tx) error {
		for i := range tx.Snap.Customers {
			if tx.Snap.Customers[i].ID == c.ID {
				tx.Snap.Customers[i] = *c
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the customer unconditionally. Sales referencing the
// customer are left untouched; orphaned references are tolerated.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("customers", func(tx *storage.Tx) error {
		kept := tx.Snap.Customers[:0]
		removed := false
		for _, c := range tx.Snap.Customers {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Customers = kept
		return nil
	})
}
