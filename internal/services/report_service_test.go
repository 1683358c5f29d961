package services_test

import (
	"context"
	"fmt"
	"testing"

	"optic-backend/internal/models"
	"optic-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoicePDF(t *testing.T) {
	t.Parallel()

	t.Run("renders a pdf named after the customer", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale := env.completeSale(t, 0, 100)

		data, name, err := env.reports.GenerateInvoicePDF(context.Background(), sale.ID)
		require.NoError(t, err)
		assert.True(t, len(data) > 500)
		assert.Equal(t, "%PDF", string(data[:4]))

		expected := fmt.Sprintf("Doe_Jane_%s.pdf", timeutil.Format(sale.CreatedAt, "2006-01-02"))
		assert.Equal(t, expected, name)
	})

	t.Run("tolerates a deleted customer", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ctx := context.Background()

		sale := env.completeSale(t, 0, 0)
		require.NoError(t, env.customers.DeleteCustomer(ctx, env.customerID))

		data, name, err := env.reports.GenerateInvoicePDF(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
		assert.Contains(t, name, "Unknown_Client")
	})

	t.Run("includes the prescription block", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID:    env.customerID,
			StaffID:       env.staffID,
			Cart:          []models.CartLine{{ProductID: env.productID, Quantity: 1}},
			PaymentMethod: models.PayCash,
			Prescription: &models.SalePrescription{
				VisionType:    models.VisionDistance,
				DistanceRight: &models.VisionMeasure{Sphere: -1.25, Cylinder: -0.5, Axis: 90},
				DistanceLeft:  &models.VisionMeasure{Sphere: -1.0},
				GlassType:     "Anti-reflective",
				DoctorName:    "Dr. Alaoui",
			},
		})
		require.NoError(t, err)

		data, _, err := env.reports.GenerateInvoicePDF(context.Background(), sale.ID)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}

func TestGenerateDeliveryNotePDF(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	supplier, err := env.suppliers.CreateSupplier(ctx, &models.CreateSupplierRequest{Name: "Essilor Maroc"})
	require.NoError(t, err)

	order, err := env.orders.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items:      []models.PurchaseOrderItem{{ProductID: env.productID, Quantity: 3, UnitPrice: 80}},
		Notes:      "Fragile",
	})
	require.NoError(t, err)

	data, name, err := env.reports.GenerateDeliveryNotePDF(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, fmt.Sprintf("Essilor_Maroc_%s.pdf", order.Date), name)
}

func TestGenerateBulkInvoices(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	first := env.completeSale(t, 0, 0)
	second := env.completeSale(t, 10, 50)
	third := env.completeSale(t, 0, 200)

	invoices, err := env.reports.GenerateBulkInvoices(context.Background())
	require.NoError(t, err)
	// One entry per sale even when one customer buys several times on
	// the same day
	require.Len(t, invoices, 3)

	for _, sale := range []*models.SaleWithPayments{first, second, third} {
		name := fmt.Sprintf("Doe_Jane_%s_%s.pdf", timeutil.Format(sale.CreatedAt, "2006-01-02"), sale.ID)
		data, ok := invoices[name]
		require.True(t, ok, "missing invoice %s", name)
		assert.Equal(t, "%PDF", string(data[:4]))
	}
}
