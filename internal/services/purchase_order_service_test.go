package services_test

import (
	"context"
	"regexp"
	"testing"

	"optic-backend/internal/models"
	"optic-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoiceNumberRe = regexp.MustCompile(`^FF-\d{5}-\d{8}$`)

func TestSuggestInvoiceNumber(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	number := env.orders.SuggestInvoiceNumber(context.Background())
	assert.Regexp(t, invoiceNumberRe, number)
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	newSupplier := func(t *testing.T, env *testEnv) string {
		t.Helper()
		supplier, err := env.suppliers.CreateSupplier(context.Background(), &models.CreateSupplierRequest{
			Name:  "Luxottica Maroc",
			Phone: "0522000000",
		})
		require.NoError(t, err)
		return supplier.ID
	}

	t.Run("derives the total and bumps stock", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ctx := context.Background()
		supplierID := newSupplier(t, env)

		order, err := env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
			SupplierID:    supplierID,
			PaymentMethod: models.PayTransfer,
			Items: []models.PurchaseOrderItem{
				{ProductID: env.productID, Quantity: 5, UnitPrice: 90},
				{Brand: "Generic", Model: "Case", Quantity: 10, UnitPrice: 2},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 470.0, order.TotalAmount)
		assert.Equal(t, models.PaymentUnpaid, order.PaymentStatus)
		assert.Regexp(t, invoiceNumberRe, order.InvoiceNumber)
		assert.NotEmpty(t, order.Date)

		// Receiving goods is the only stock increase path
		product, err := env.products.GetProduct(ctx, env.productID)
		require.NoError(t, err)
		assert.Equal(t, 15, product.Quantity)
	})

	t.Run("snapshots brand and unit price from the product", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		supplierID := newSupplier(t, env)

		order, err := env.orders.CreateOrder(context.Background(), &models.CreatePurchaseOrderRequest{
			SupplierID: supplierID,
			Items: []models.PurchaseOrderItem{
				{ProductID: env.productID, Quantity: 2},
			},
		})
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Ray-Ban", order.Items[0].Brand)
		assert.Equal(t, "Aviator", order.Items[0].Model)
	})

	t.Run("keeps a caller-provided invoice number", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		supplierID := newSupplier(t, env)

		order, err := env.orders.CreateOrder(context.Background(), &models.CreatePurchaseOrderRequest{
			SupplierID:    supplierID,
			InvoiceNumber: "CUSTOM-42",
			Items: []models.PurchaseOrderItem{
				{Brand: "Essilor", Model: "Lens", Quantity: 1, UnitPrice: 60},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "CUSTOM-42", order.InvoiceNumber)
	})

	t.Run("validates supplier, lines and quantities", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ctx := context.Background()
		supplierID := newSupplier(t, env)

		_, err := env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
			Items: []models.PurchaseOrderItem{{Brand: "X", Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrValidation)

		_, err = env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
			SupplierID: supplierID,
		})
		assert.ErrorIs(t, err, services.ErrValidation)

		_, err = env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
			SupplierID: supplierID,
			Items:      []models.PurchaseOrderItem{{Brand: "X", Quantity: 0}},
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestSearchOrders(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	supplier, err := env.suppliers.CreateSupplier(ctx, &models.CreateSupplierRequest{Name: "Hoya Vision"})
	require.NoError(t, err)

	_, err = env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
		SupplierID:    supplier.ID,
		InvoiceNumber: "HV-2024-001",
		Items:         []models.PurchaseOrderItem{{Brand: "Hoya", Model: "Blue", Quantity: 1, UnitPrice: 40}},
	})
	require.NoError(t, err)

	byInvoice, err := env.orders.SearchOrders(ctx, "hv-2024")
	require.NoError(t, err)
	assert.Len(t, byInvoice, 1)

	bySupplier, err := env.orders.SearchOrders(ctx, "hoya")
	require.NoError(t, err)
	assert.Len(t, bySupplier, 1)

	none, err := env.orders.SearchOrders(ctx, "zeiss")
	require.NoError(t, err)
	assert.Empty(t, none)
}
