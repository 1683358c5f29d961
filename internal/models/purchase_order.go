package models

import "time"

// PurchaseOrderItem is one received line of a supplier delivery. Brand
// and model are snapshotted from the product at entry time.
type PurchaseOrderItem struct {
	ProductID string  `json:"product_id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PurchaseOrder is a supplier goods-receipt record, distinct from a
// sale, tracking incoming stock.
type PurchaseOrder struct {
	ID            string              `json:"id"`
	SupplierID    string              `json:"supplier_id"`
	InvoiceNumber string              `json:"invoice_number"`
	Date          string              `json:"date"`
	TotalAmount   float64             `json:"total_amount"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	PaymentStatus PaymentState        `json:"payment_status"`
	Items         []PurchaseOrderItem `json:"items"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID    string              `json:"supplier_id"`
	InvoiceNumber string              `json:"invoice_number"`
	Date          string              `json:"date"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	PaymentStatus PaymentState        `json:"payment_status"`
	Items         []PurchaseOrderItem `json:"items"`
	Notes         string              `json:"notes"`
}
