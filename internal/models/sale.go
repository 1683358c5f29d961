package models

import "time"

// SaleStatus is the fulfillment stage of a sale, independent of how
// much of it has been paid. Any status may move to any other; the shop
// workflow is not enforced as a state machine.
type SaleStatus string

const (
	SalePending   SaleStatus = "Pending"
	SalePreparing SaleStatus = "Preparing"
	SaleReady     SaleStatus = "Ready"
	SaleDelivered SaleStatus = "Delivered"
	SaleCancelled SaleStatus = "Cancelled"
)

// ValidSaleStatus reports whether s is one of the fixed enumeration.
func ValidSaleStatus(s SaleStatus) bool {
	switch s {
	case SalePending, SalePreparing, SaleReady, SaleDelivered, SaleCancelled:
		return true
	}
	return false
}

// PaymentMethod is how an amount was settled.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "Cash"
	PayCard     PaymentMethod = "Card"
	PayTransfer PaymentMethod = "Transfer"
)

// PaymentState classifies a sale by payments-to-date versus total.
// It is derived on every read and never stored.
type PaymentState string

const (
	PaymentUnpaid  PaymentState = "Unpaid"
	PaymentAdvance PaymentState = "Advance"
	PaymentPaid    PaymentState = "Paid"
)

// Payment is one discrete amount applied toward a sale's total.
// Payments are append-only and immutable once recorded.
type Payment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Method PaymentMethod `json:"method"`
	Date   time.Time     `json:"date"`
}

// VisionType selects which eye-measurement blocks a prescription
// carries: distance vision, near vision, or both.
type VisionType string

const (
	VisionDistance VisionType = "Distance"
	VisionNear     VisionType = "Near"
	VisionSplit    VisionType = "Split"
)

// VisionMeasure is one sphere/cylinder/axis/addition quadruple for a
// single eye.
type VisionMeasure struct {
	Sphere   float64 `json:"sphere"`
	Cylinder float64 `json:"cylinder"`
	Axis     int     `json:"axis"`
	Addition float64 `json:"addition"`
}

// SalePrescription is the optical measurement data attached to a sale.
type SalePrescription struct {
	VisionType    VisionType     `json:"vision_type"`
	DistanceRight *VisionMeasure `json:"distance_right,omitempty"`
	DistanceLeft  *VisionMeasure `json:"distance_left,omitempty"`
	NearRight     *VisionMeasure `json:"near_right,omitempty"`
	NearLeft      *VisionMeasure `json:"near_left,omitempty"`
	GlassType     string         `json:"glass_type,omitempty"`
	InsuranceType string         `json:"insurance_type,omitempty"`
	DoctorName    string         `json:"doctor_name,omitempty"`
	DoctorPhone   string         `json:"doctor_phone,omitempty"`
	DoctorAddress string         `json:"doctor_address,omitempty"`
}

// SaleProductItem is a denormalized copy of one cart line, decoupled
// from the live product record so historical invoices stay stable when
// a product is later edited or deleted.
type SaleProductItem struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Sale struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customer_id"`
	StaffID       string            `json:"staff_id,omitempty"`
	TotalAmount   float64           `json:"total_amount"`
	Discount      float64           `json:"discount"`
	TaxRate       float64           `json:"tax_rate"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Payments      []Payment         `json:"payments"`
	Prescription  *SalePrescription `json:"prescription,omitempty"`
	Items         []SaleProductItem `json:"items,omitempty"`
	Status        SaleStatus        `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// CartLine is one product/quantity pair of a sale in progress.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CompleteSaleRequest turns a cart plus form state into a sale record.
type CompleteSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	StaffID       string            `json:"staff_id"`
	Cart          []CartLine        `json:"cart"`
	Discount      float64           `json:"discount"`
	Advance       float64           `json:"advance"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Prescription  *SalePrescription `json:"prescription"`
}

type AddPaymentRequest struct {
	Amount float64       `json:"amount"`
	Method PaymentMethod `json:"method"`
}

type UpdateSaleStatusRequest struct {
	Status SaleStatus `json:"status"`
}

// PaymentBreakdown is the derived payment view of a sale.
type PaymentBreakdown struct {
	TotalPaid float64      `json:"total_paid"`
	Remaining float64      `json:"remaining"`
	Progress  float64      `json:"progress"`
	Status    PaymentState `json:"status"`
}

// SaleWithPayments is the list/detail representation returned by the
// API: the stored record plus its derived payment breakdown.
type SaleWithPayments struct {
	Sale
	Payment PaymentBreakdown `json:"payment"`
}
