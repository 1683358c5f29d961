package models

type Product struct {
	ID            string  `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Reference     string  `json:"reference"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Color         string  `json:"color"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Quantity      int     `json:"quantity"`
	MinStock      int     `json:"min_stock"`
	ImageURL      string  `json:"image_url,omitempty"`
	SupplierID    string  `json:"supplier_id,omitempty"`
}

// LowStock reports whether the quantity on hand has reached the
// minimum stock threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

type CreateProductRequest struct {
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Reference     string  `json:"reference"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Color         string  `json:"color"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Quantity      int     `json:"quantity"`
	MinStock      int     `json:"min_stock"`
	ImageURL      string  `json:"image_url"`
	SupplierID    string  `json:"supplier_id"`
}

type UpdateProductRequest struct {
	Brand         *string  `json:"brand"`
	Model         *string  `json:"model"`
	Reference     *string  `json:"reference"`
	Type          *string  `json:"type"`
	Category      *string  `json:"category"`
	Color         *string  `json:"color"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"`
	Quantity      *int     `json:"quantity"`
	MinStock      *int     `json:"min_stock"`
	ImageURL      *string  `json:"image_url"`
	SupplierID    *string  `json:"supplier_id"`
}
