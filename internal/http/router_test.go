package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"optic-backend/internal/handlers"
	"optic-backend/internal/health"
	apihttp "optic-backend/internal/http"
	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
	"optic-backend/internal/services"
	"optic-backend/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	store := storage.Open(path, storage.SeedSnapshot())

	customerRepo := repositories.NewCustomerRepository(store)
	productRepo := repositories.NewProductRepository(store)
	supplierRepo := repositories.NewSupplierRepository(store)
	staffRepo := repositories.NewStaffRepository(store)
	saleRepo := repositories.NewSaleRepository(store)
	orderRepo := repositories.NewPurchaseOrderRepository(store)
	appointmentRepo := repositories.NewAppointmentRepository(store)
	settingsRepo := repositories.NewSettingsRepository(store)

	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	staffService := services.NewStaffService(staffRepo)
	saleService := services.NewSaleService(saleRepo, productRepo, customerRepo, staffRepo, settingsRepo)
	orderService := services.NewPurchaseOrderService(orderRepo, productRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	reportService := services.NewReportService(saleRepo, customerRepo, staffRepo, supplierRepo, orderRepo, settingsRepo)

	return apihttp.NewRouter(
		handlers.NewCustomerHandler(customerService, saleService),
		handlers.NewProductHandler(productService),
		handlers.NewSupplierHandler(supplierService),
		handlers.NewStaffHandler(staffService),
		handlers.NewSaleHandler(saleService),
		handlers.NewPurchaseOrderHandler(orderService),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewSettingsHandler(settingsService),
		handlers.NewReportHandler(reportService),
		handlers.NewHealthHandler(health.NewHealthChecker(store)),
		handlers.NewEventsHandler(),
	)
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestCustomerEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/customers", models.CreateCustomerRequest{
		FirstName: "Leila",
		LastName:  "Bennis",
		Phone:     "0633333333",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rec = doJSON(t, router, "GET", "/api/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/customers?q=leila", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bennis")

	rec = doJSON(t, router, "GET", "/api/customers/not-there", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaleLifecycleOverHTTP(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	// Seed data ships customer "1", staff "st1", product "101"
	rec := doJSON(t, router, "POST", "/api/sales", models.CompleteSaleRequest{
		CustomerID:    "1",
		StaffID:       "st1",
		Cart:          []models.CartLine{{ProductID: "101", Quantity: 1}},
		Advance:       50,
		PaymentMethod: models.PayCash,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var sale models.SaleWithPayments
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
	assert.Equal(t, "C0003", sale.ID)
	assert.Equal(t, models.PaymentAdvance, sale.Payment.Status)

	rec = doJSON(t, router, "POST", fmt.Sprintf("/api/sales/%s/payments", sale.ID), models.AddPaymentRequest{
		Amount: 100,
		Method: models.PayCard,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
	assert.Equal(t, models.PaymentPaid, sale.Payment.Status)

	rec = doJSON(t, router, "PUT", fmt.Sprintf("/api/sales/%s/status", sale.ID), models.UpdateSaleStatusRequest{
		Status: models.SaleReady,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "PUT", fmt.Sprintf("/api/sales/%s/status", sale.ID), map[string]string{
		"status": "Teleported",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "GET", fmt.Sprintf("/api/sales/%s/invoice.pdf", sale.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", rec.Body.String()[:4])

	rec = doJSON(t, router, "DELETE", "/api/sales/"+sale.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSaleValidationOverHTTP(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/sales", models.CompleteSaleRequest{
		CustomerID: "1",
		StaffID:    "st1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
}

func TestSettingsEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	name := "Optique Nouvelle"
	rec := doJSON(t, router, "PUT", "/api/settings", models.UpdateSettingsRequest{Name: &name})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Optique Nouvelle")
}

func TestOrderEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/suppliers", models.CreateSupplierRequest{Name: "Zeiss Maroc"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var supplier models.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &supplier))

	rec = doJSON(t, router, "GET", "/api/purchase-orders/suggest-invoice-number", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FF-")

	rec = doJSON(t, router, "POST", "/api/purchase-orders", models.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items:      []models.PurchaseOrderItem{{ProductID: "101", Quantity: 4, UnitPrice: 75}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.PurchaseOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 300.0, order.TotalAmount)

	rec = doJSON(t, router, "GET", fmt.Sprintf("/api/purchase-orders/%s/delivery-note.pdf", order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}
