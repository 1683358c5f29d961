package repositories

import (
	"context"
	"strings"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"

	"github.com/google/uuid"
)

type ProductRepository struct {
	Store *storage.Store
}

func NewProductRepository(store *storage.Store) *ProductRepository {
	return &ProductRepository{Store: store}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	p.ID = uuid.NewString()
	return r.Store.Update("products", func(tx *storage.Tx) error {
		tx.Snap.Products = append([]models.Product{*p}, tx.Snap.Products...)
		return nil
	})
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	var found *models.Product
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				p := snap.Products[i]
				found = &p
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	r.Store.View(func(snap *storage.Snapshot) {
		products = append(products, snap.Products...)
	})
	return products, nil
}

// Search matches a case-insensitive substring of brand, model or
// reference.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	var products []models.Product
	r.Store.View(func(snap *storage.Snapshot) {
		for _, p := range snap.Products {
			hay := strings.ToLower(p.Brand + " " + p.Model + " " + p.Reference)
			if strings.Contains(hay, q) {
				products = append(products, p)
			}
		}
	})
	return products, nil
}

// LowStock returns products at or below their minimum stock threshold.
func (r *ProductRepository) LowStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	r.Store.View(func(snap *storage.Snapshot) {
		for _, p := range snap.Products {
			if p.LowStock() {
				products = append(products, p)
			}
		}
	})
	return products, nil
}

func (r *ProductRepository) Replace(ctx context.Context, p *models.Product) error {
	return r.Store.Update("products", func(tx *storage.Tx) error {
		for i := range tx.Snap.Products {
			if tx.Snap.Products[i].ID == p.ID {
				tx.Snap.Products[i] = *p
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("products", func(tx *storage.Tx) error {
		kept := tx.Snap.Products[:0]
		removed := false
		for _, p := range tx.Snap.Products {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Products = kept
		return nil
	})
}
