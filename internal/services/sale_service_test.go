package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
	"optic-backend/internal/services"
	"optic-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store        *storage.Store
	customers    *services.CustomerService
	products     *services.ProductService
	suppliers    *services.SupplierService
	staff        *services.StaffService
	sales        *services.SaleService
	orders       *services.PurchaseOrderService
	appointments *services.AppointmentService
	settings     *services.SettingsService
	reports      *services.ReportService

	customerID string
	staffID    string
	productID  string
}

// newTestEnv wires the full service stack over a fresh snapshot file
// and creates one customer, one staff member and one product.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	store := storage.Open(path, storage.Snapshot{
		Settings: models.ShopSettings{
			Name:         "Test Optics",
			ICE:          "001122334455667",
			Address:      "1 Test Street",
			Phone:        "0500000000",
			TVA:          20,
			PrimaryColor: "#f97316",
		},
	})

	customerRepo := repositories.NewCustomerRepository(store)
	productRepo := repositories.NewProductRepository(store)
	supplierRepo := repositories.NewSupplierRepository(store)
	staffRepo := repositories.NewStaffRepository(store)
	saleRepo := repositories.NewSaleRepository(store)
	orderRepo := repositories.NewPurchaseOrderRepository(store)
	appointmentRepo := repositories.NewAppointmentRepository(store)
	settingsRepo := repositories.NewSettingsRepository(store)

	env := &testEnv{
		store:        store,
		customers:    services.NewCustomerService(customerRepo),
		products:     services.NewProductService(productRepo),
		suppliers:    services.NewSupplierService(supplierRepo),
		staff:        services.NewStaffService(staffRepo),
		sales:        services.NewSaleService(saleRepo, productRepo, customerRepo, staffRepo, settingsRepo),
		orders:       services.NewPurchaseOrderService(orderRepo, productRepo),
		appointments: services.NewAppointmentService(appointmentRepo),
		settings:     services.NewSettingsService(settingsRepo),
		reports:      services.NewReportService(saleRepo, customerRepo, staffRepo, supplierRepo, orderRepo, settingsRepo),
	}

	ctx := context.Background()

	customer, err := env.customers.CreateCustomer(ctx, &models.CreateCustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "0611111111",
	})
	require.NoError(t, err)
	env.customerID = customer.ID

	member, err := env.staff.CreateStaff(ctx, &models.CreateStaffRequest{
		FirstName: "Sam",
		LastName:  "Seller",
		Role:      models.RoleSalesperson,
	})
	require.NoError(t, err)
	env.staffID = member.ID

	product, err := env.products.CreateProduct(ctx, &models.CreateProductRequest{
		Brand:        "Ray-Ban",
		Model:        "Aviator",
		Reference:    "RB3025",
		SellingPrice: 200,
		Quantity:     10,
		MinStock:     2,
	})
	require.NoError(t, err)
	env.productID = product.ID

	return env
}

func (e *testEnv) completeSale(t *testing.T, discount, advance float64) *models.SaleWithPayments {
	t.Helper()
	sale, err := e.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
		CustomerID:    e.customerID,
		StaffID:       e.staffID,
		Cart:          []models.CartLine{{ProductID: e.productID, Quantity: 1}},
		Discount:      discount,
		Advance:       advance,
		PaymentMethod: models.PayCash,
	})
	require.NoError(t, err)
	return sale
}

func TestCompleteSale(t *testing.T) {
	t.Parallel()

	t.Run("computes total from cart and discount", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID:    env.customerID,
			StaffID:       env.staffID,
			Cart:          []models.CartLine{{ProductID: env.productID, Quantity: 2}},
			Discount:      50,
			PaymentMethod: models.PayCard,
		})
		require.NoError(t, err)

		assert.Equal(t, 350.0, sale.TotalAmount)
		assert.Equal(t, models.SalePending, sale.Status)
		assert.Equal(t, 20.0, sale.TaxRate)
		assert.Equal(t, models.PaymentUnpaid, sale.Payment.Status)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, "Ray-Ban", sale.Items[0].Brand)
		assert.Equal(t, 2, sale.Items[0].Quantity)
	})

	t.Run("assigns sequential readable ids", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		first := env.completeSale(t, 0, 0)
		second := env.completeSale(t, 0, 0)
		assert.Equal(t, "C0001", first.ID)
		assert.Equal(t, "C0002", second.ID)
	})

	t.Run("discount never drives the total negative", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale := env.completeSale(t, 10000, 0)
		assert.Equal(t, 0.0, sale.TotalAmount)
		// Zero-total sales are fully paid by convention
		assert.Equal(t, models.PaymentPaid, sale.Payment.Status)
		assert.Equal(t, 100.0, sale.Payment.Progress)
		assert.Equal(t, 0.0, sale.Payment.Remaining)
	})

	t.Run("advance becomes the initial payment", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale := env.completeSale(t, 0, 80)
		require.Len(t, sale.Payments, 1)
		assert.Equal(t, 80.0, sale.Payments[0].Amount)
		assert.Equal(t, models.PaymentAdvance, sale.Payment.Status)
		assert.Equal(t, 120.0, sale.Payment.Remaining)
		assert.InDelta(t, 40.0, sale.Payment.Progress, 0.001)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID: env.customerID,
			StaffID:    env.staffID,
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("rejects unknown customer and staff", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID: "ghost",
			StaffID:    env.staffID,
			Cart:       []models.CartLine{{ProductID: env.productID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrValidation)

		_, err = env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID: env.customerID,
			StaffID:    "ghost",
			Cart:       []models.CartLine{{ProductID: env.productID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("rejects negative discount and advance", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID: env.customerID,
			StaffID:    env.staffID,
			Cart:       []models.CartLine{{ProductID: env.productID, Quantity: 1}},
			Discount:   -1,
		})
		assert.ErrorIs(t, err, services.ErrValidation)

		_, err = env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID: env.customerID,
			StaffID:    env.staffID,
			Cart:       []models.CartLine{{ProductID: env.productID, Quantity: 1}},
			Advance:    -1,
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("vanished product becomes a placeholder line", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale, err := env.sales.CompleteSale(context.Background(), &models.CompleteSaleRequest{
			CustomerID:    env.customerID,
			StaffID:       env.staffID,
			Cart:          []models.CartLine{{ProductID: "deleted", Quantity: 1}},
			PaymentMethod: models.PayCash,
		})
		require.NoError(t, err)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, "Unknown", sale.Items[0].Brand)
		assert.Equal(t, 0.0, sale.Items[0].Price)
		assert.Equal(t, 0.0, sale.TotalAmount)
	})

	t.Run("does not decrement product stock", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		env.completeSale(t, 0, 0)

		product, err := env.products.GetProduct(context.Background(), env.productID)
		require.NoError(t, err)
		assert.Equal(t, 10, product.Quantity)
	})
}

func TestAddPayment(t *testing.T) {
	t.Parallel()

	t.Run("moves the sale through unpaid, advance, paid", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ctx := context.Background()

		sale := env.completeSale(t, 0, 0)
		assert.Equal(t, models.PaymentUnpaid, sale.Payment.Status)

		sale, err := env.sales.AddPayment(ctx, sale.ID, &models.AddPaymentRequest{Amount: 50, Method: models.PayCash})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentAdvance, sale.Payment.Status)
		assert.Equal(t, 150.0, sale.Payment.Remaining)

		sale, err = env.sales.AddPayment(ctx, sale.ID, &models.AddPaymentRequest{Amount: 150, Method: models.PayCard})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPaid, sale.Payment.Status)
		assert.Equal(t, 0.0, sale.Payment.Remaining)
		assert.Equal(t, 100.0, sale.Payment.Progress)
	})

	t.Run("overpayment is accepted and capped in the breakdown", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale := env.completeSale(t, 0, 0)
		sale, err := env.sales.AddPayment(context.Background(), sale.ID, &models.AddPaymentRequest{Amount: 999, Method: models.PayCash})
		require.NoError(t, err)

		assert.Equal(t, 999.0, sale.Payment.TotalPaid)
		assert.Equal(t, 0.0, sale.Payment.Remaining)
		assert.Equal(t, 100.0, sale.Payment.Progress)
		assert.Equal(t, models.PaymentPaid, sale.Payment.Status)
	})

	t.Run("unknown sale yields not found", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, err := env.sales.AddPayment(context.Background(), "C9999", &models.AddPaymentRequest{Amount: 10})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("any transition of the enumeration is legal", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		ctx := context.Background()

		sale := env.completeSale(t, 0, 0)

		for _, status := range []models.SaleStatus{
			models.SaleDelivered,
			models.SalePending,
			models.SaleCancelled,
			models.SalePreparing,
			models.SaleReady,
		} {
			updated, err := env.sales.UpdateStatus(ctx, sale.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		sale := env.completeSale(t, 0, 0)
		_, err := env.sales.UpdateStatus(context.Background(), sale.ID, models.SaleStatus("Shipped"))
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestDeleteSale(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	sale := env.completeSale(t, 0, 0)
	require.NoError(t, env.sales.Delete(ctx, sale.ID))

	_, err := env.sales.Get(ctx, sale.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListByCustomer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.completeSale(t, 0, 0)
	env.completeSale(t, 0, 0)

	mine, err := env.sales.ListByCustomer(ctx, env.customerID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other, err := env.sales.ListByCustomer(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}
