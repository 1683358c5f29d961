package repositories

import (
	"context"
	"strings"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"
	"optic-backend/internal/timeutil"

	"github.com/google/uuid"
)

type PurchaseOrderRepository struct {
	Store *storage.Store
}

func NewPurchaseOrderRepository(store *storage.Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{Store: store}
}

// Create records the goods receipt and increments the quantity of any
// live product its lines reference, in one transaction. Lines pointing
// at a deleted product still count toward the order total; there is
// simply no stock record left to bump.
func (r *PurchaseOrderRepository) Create(ctx context.Context, order *models.PurchaseOrder) error {
	order.ID = uuid.NewString()
	order.CreatedAt = timeutil.Now()
	return r.Store.Update("purchase_orders", func(tx *storage.Tx) error {
		tx.Snap.PurchaseOrders = append([]models.PurchaseOrder{*order}, tx.Snap.PurchaseOrders...)
		for _, item := range order.Items {
			for i := range tx.Snap.Products {
				if tx.Snap.Products[i].ID == item.ProductID {
					tx.Snap.Products[i].Quantity += item.Quantity
					break
				}
			}
		}
		return nil
	})
}

func (r *PurchaseOrderRepository) Get(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	var found *models.PurchaseOrder
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.PurchaseOrders {
			if snap.PurchaseOrders[i].ID == id {
				o := snap.PurchaseOrders[i]
				found = &o
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *PurchaseOrderRepository) List(ctx context.Context) ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	r.Store.View(func(snap *storage.Snapshot) {
		orders = append(orders, snap.PurchaseOrders...)
	})
	return orders, nil
}

// Search matches the invoice number or the supplier name,
// case-insensitively.
func (r *PurchaseOrderRepository) Search(ctx context.Context, query string) ([]models.PurchaseOrder, error) {
	q := strings.ToLower(query)
	var orders []models.PurchaseOrder
	r.Store.View(func(snap *storage.Snapshot) {
		names := make(map[string]string, len(snap.Suppliers))
		for _, s := range snap.Suppliers {
			names[s.ID] = strings.ToLower(s.Name)
		}
		for _, o := range snap.PurchaseOrders {
			hay := strings.ToLower(o.InvoiceNumber) + " " + names[o.SupplierID]
			if strings.Contains(hay, q) {
				orders = append(orders, o)
			}
		}
	})
	return orders, nil
}

// NextSequence is the basis for the suggested invoice number.
func (r *PurchaseOrderRepository) NextSequence(ctx context.Context) int {
	var n int
	r.Store.View(func(snap *storage.Snapshot) {
		n = len(snap.PurchaseOrders) + 1
	})
	return n
}

func (r *PurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("purchase_orders", func(tx *storage.Tx) error {
		kept := tx.Snap.PurchaseOrders[:0]
		removed := false
		for _, o := range tx.Snap.PurchaseOrders {
			if o.ID == id {
				removed = true
				continue
			}
			kept = append(kept, o)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.PurchaseOrders = kept
		return nil
	})
}
