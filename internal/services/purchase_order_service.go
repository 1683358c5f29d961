package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
	"optic-backend/internal/timeutil"
)

type PurchaseOrderService struct {
	Repo     *repositories.PurchaseOrderRepository
	Products *repositories.ProductRepository
}

func NewPurchaseOrderService(repo *repositories.PurchaseOrderRepository, products *repositories.ProductRepository) *PurchaseOrderService {
	return &PurchaseOrderService{Repo: repo, Products: products}
}

// SuggestInvoiceNumber builds the default goods-receipt reference from
// the order sequence and today's date. The number stays user-editable;
// this is only the pre-filled suggestion.
func (s *PurchaseOrderService) SuggestInvoiceNumber(ctx context.Context) string {
	seq := s.Repo.NextSequence(ctx)
	return fmt.Sprintf("FF-%05d-%s", seq, timeutil.Now().Format("20060102"))
}

// CreateOrder records a supplier delivery. The total is always derived
// from the lines, never trusted from the request, and receiving the
// goods bumps the stock of every referenced live product.
func (s *PurchaseOrderService) CreateOrder(ctx context.Context, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	if req.SupplierID == "" {
		return nil, fmt.Errorf("%w: no supplier selected", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no lines", ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line quantities must be positive", ErrValidation)
		}
	}

	var total float64
	items := make([]models.PurchaseOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		// Snapshot brand/model from the live product when the line
		// references one and the form left them blank.
		if item.ProductID != "" && item.Brand == "" {
			if p, err := s.Products.Get(ctx, item.ProductID); err == nil {
				item.Brand = p.Brand
				item.Model = p.Model
				if item.UnitPrice == 0 {
					item.UnitPrice = p.PurchasePrice
				}
			}
		}
		total += float64(item.Quantity) * item.UnitPrice
		items = append(items, item)
	}

	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = s.SuggestInvoiceNumber(ctx)
	}
	date := req.Date
	if date == "" {
		date = timeutil.Now().Format("2006-01-02")
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}

	order := models.PurchaseOrder{
		SupplierID:    req.SupplierID,
		InvoiceNumber: invoiceNumber,
		Date:          date,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatus,
		Items:         items,
		Notes:         req.Notes,
	}
	if err := s.Repo.Create(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *PurchaseOrderService) GetOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PurchaseOrderService) ListOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	return s.Repo.List(ctx)
}

func (s *PurchaseOrderService) SearchOrders(ctx context.Context, query string) ([]models.PurchaseOrder, error) {
	return s.Repo.Search(ctx, query)
}

func (s *PurchaseOrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
