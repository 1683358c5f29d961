package services

import (
	"context"
	"fmt"

	"optic-backend/internal/metrics"
	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
	"optic-backend/internal/timeutil"

	"github.com/google/uuid"
)

// SaleService is the sale/order engine: it turns a cart plus form
// state into a sale record and manages that sale's payment and
// fulfillment lifecycle afterwards.
type SaleService struct {
	Sales     *repositories.SaleRepository
	Products  *repositories.ProductRepository
	Customers *repositories.CustomerRepository
	Staff     *repositories.StaffRepository
	Settings  *repositories.SettingsRepository
}

func NewSaleService(
	sales *repositories.SaleRepository,
	products *repositories.ProductRepository,
	customers *repositories.CustomerRepository,
	staff *repositories.StaffRepository,
	settings *repositories.SettingsRepository,
) *SaleService {
	return &SaleService{
		Sales:     sales,
		Products:  products,
		Customers: customers,
		Staff:     staff,
		Settings:  settings,
	}
}

// CompleteSale validates the cart and selections, computes the total,
// snapshots the cart lines and stores the new sale. Nothing is mutated
// on a validation failure. Product quantities are not decremented:
// stock moves only through supplier deliveries.
func (s *SaleService) CompleteSale(ctx context.Context, req *models.CompleteSaleRequest) (*models.SaleWithPayments, error) {
	if len(req.Cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: no customer selected", ErrValidation)
	}
	if req.StaffID == "" {
		return nil, fmt.Errorf("%w: no staff member selected", ErrValidation)
	}
	if req.Discount < 0 {
		return nil, fmt.Errorf("%w: discount must not be negative", ErrValidation)
	}
	if req.Advance < 0 {
		return nil, fmt.Errorf("%w: advance must not be negative", ErrValidation)
	}
	for _, line := range req.Cart {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cart quantities must be positive", ErrValidation)
		}
	}
	if _, err := s.Customers.Get(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("%w: unknown customer", ErrValidation)
	}
	if _, err := s.Staff.Get(ctx, req.StaffID); err != nil {
		return nil, fmt.Errorf("%w: unknown staff member", ErrValidation)
	}

	// Snapshot each cart line, decoupled from the live product record.
	// A line whose product has vanished is kept with a placeholder.
	var subtotal float64
	items := make([]models.SaleProductItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		item := models.SaleProductItem{
			Brand:    "Unknown",
			Model:    "Product",
			Quantity: line.Quantity,
		}
		if p, err := s.Products.Get(ctx, line.ProductID); err == nil {
			item.Brand = p.Brand
			item.Model = p.Model
			item.Price = p.SellingPrice
		}
		subtotal += item.Price * float64(line.Quantity)
		items = append(items, item)
	}

	// A discount larger than the subtotal never produces a negative
	// total.
	total := subtotal - req.Discount
	if total < 0 {
		total = 0
	}

	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		CustomerID:    req.CustomerID,
		StaffID:       req.StaffID,
		TotalAmount:   total,
		Discount:      req.Discount,
		TaxRate:       settings.TVA,
		PaymentMethod: req.PaymentMethod,
		Payments:      []models.Payment{},
		Prescription:  req.Prescription,
		Items:         items,
		Status:        models.SalePending,
		CreatedAt:     timeutil.Now(),
	}
	if req.Advance > 0 {
		sale.Payments = append(sale.Payments, models.Payment{
			ID:     uuid.NewString(),
			Amount: req.Advance,
			Method: req.PaymentMethod,
			Date:   timeutil.Now(),
		})
	}

	if err := s.Sales.Create(ctx, &sale); err != nil {
		return nil, err
	}
	metrics.SalesCompletedTotal.Inc()

	return withPayments(&sale), nil
}

// AddPayment appends a payment to the sale. Payments are never capped
// at the outstanding balance; amount validation is a form concern.
func (s *SaleService) AddPayment(ctx context.Context, saleID string, req *models.AddPaymentRequest) (*models.SaleWithPayments, error) {
	sale, err := s.Sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Payments = append(sale.Payments, models.Payment{
		ID:     uuid.NewString(),
		Amount: req.Amount,
		Method: req.Method,
		Date:   timeutil.Now(),
	})
	if err := s.Sales.Replace(ctx, sale); err != nil {
		return nil, err
	}
	metrics.PaymentsRecordedTotal.Inc()
	return withPayments(sale), nil
}

// UpdateStatus moves the sale to any status of the fixed enumeration.
// There is deliberately no transition graph: Delivered back to Pending
// is as legal as Pending to Preparing.
func (s *SaleService) UpdateStatus(ctx context.Context, saleID string, status models.SaleStatus) (*models.SaleWithPayments, error) {
	if !models.ValidSaleStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	sale, err := s.Sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Status = status
	if err := s.Sales.Replace(ctx, sale); err != nil {
		return nil, err
	}
	return withPayments(sale), nil
}

func (s *SaleService) Delete(ctx context.Context, saleID string) error {
	return s.Sales.Delete(ctx, saleID)
}

func (s *SaleService) Get(ctx context.Context, saleID string) (*models.SaleWithPayments, error) {
	sale, err := s.Sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return withPayments(sale), nil
}

func (s *SaleService) List(ctx context.Context) ([]models.SaleWithPayments, error) {
	sales, err := s.Sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.SaleWithPayments, 0, len(sales))
	for i := range sales {
		out = append(out, *withPayments(&sales[i]))
	}
	return out, nil
}

func (s *SaleService) ListByCustomer(ctx context.Context, customerID string) ([]models.SaleWithPayments, error) {
	sales, err := s.Sales.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.SaleWithPayments, 0, len(sales))
	for i := range sales {
		out = append(out, *withPayments(&sales[i]))
	}
	return out, nil
}

// Breakdown derives the payment view of a sale. It is recomputed on
// every read, never stored. A zero-total sale is fully paid at 100%
// with zero remainder by convention, and an overpaid sale is reported
// as paid with zero remainder rather than rejected.
func Breakdown(sale *models.Sale) models.PaymentBreakdown {
	var paid float64
	for _, p := range sale.Payments {
		paid += p.Amount
	}

	remaining := sale.TotalAmount - paid
	if remaining < 0 {
		remaining = 0
	}

	progress := 100.0
	if sale.TotalAmount > 0 {
		progress = paid / sale.TotalAmount * 100
		if progress > 100 {
			progress = 100
		}
	}

	status := models.PaymentUnpaid
	switch {
	case paid >= sale.TotalAmount:
		status = models.PaymentPaid
	case paid > 0:
		status = models.PaymentAdvance
	}

	return models.PaymentBreakdown{
		TotalPaid: paid,
		Remaining: remaining,
		Progress:  progress,
		Status:    status,
	}
}

func withPayments(sale *models.Sale) *models.SaleWithPayments {
	return &models.SaleWithPayments{Sale: *sale, Payment: Breakdown(sale)}
}
