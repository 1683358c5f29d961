package http

import (
	"optic-backend/internal/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	customerHandler *handlers.CustomerHandler,
	productHandler *handlers.ProductHandler,
	supplierHandler *handlers.SupplierHandler,
	staffHandler *handlers.StaffHandler,
	saleHandler *handlers.SaleHandler,
	orderHandler *handlers.PurchaseOrderHandler,
	appointmentHandler *handlers.AppointmentHandler,
	settingsHandler *handlers.SettingsHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	eventsHandler *handlers.EventsHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.HealthDetailed).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// WebSocket change feed
	r.HandleFunc("/ws/events", eventsHandler.HandleWebSocket)

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/sales", customerHandler.ListCustomerSales).Methods("GET")

	// Products
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/low-stock", productHandler.ListLowStock).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", productHandler.DeleteProduct).Methods("DELETE")

	// Suppliers
	suppliersAPI := r.PathPrefix("/api/suppliers").Subrouter()
	suppliersAPI.HandleFunc("", supplierHandler.ListSuppliers).Methods("GET")
	suppliersAPI.HandleFunc("", supplierHandler.CreateSupplier).Methods("POST")
	suppliersAPI.HandleFunc("/{id}", supplierHandler.GetSupplier).Methods("GET")
	suppliersAPI.HandleFunc("/{id}", supplierHandler.UpdateSupplier).Methods("PUT")
	suppliersAPI.HandleFunc("/{id}", supplierHandler.DeleteSupplier).Methods("DELETE")

	// Staff
	staffAPI := r.PathPrefix("/api/staff").Subrouter()
	staffAPI.HandleFunc("", staffHandler.ListStaff).Methods("GET")
	staffAPI.HandleFunc("", staffHandler.CreateStaff).Methods("POST")
	staffAPI.HandleFunc("/{id}", staffHandler.GetStaff).Methods("GET")
	staffAPI.HandleFunc("/{id}", staffHandler.UpdateStaff).Methods("PUT")
	staffAPI.HandleFunc("/{id}", staffHandler.DeleteStaff).Methods("DELETE")

	// Sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CompleteSale).Methods("POST")
	salesAPI.HandleFunc("/export", reportHandler.ExportInvoices).Methods("GET")
	salesAPI.HandleFunc("/{id}", saleHandler.GetSale).Methods("GET")
	salesAPI.HandleFunc("/{id}", saleHandler.DeleteSale).Methods("DELETE")
	salesAPI.HandleFunc("/{id}/payments", saleHandler.AddPayment).Methods("POST")
	salesAPI.HandleFunc("/{id}/status", saleHandler.UpdateStatus).Methods("PUT")
	salesAPI.HandleFunc("/{id}/invoice.pdf", reportHandler.GetInvoice).Methods("GET")

	// Purchase orders
	ordersAPI := r.PathPrefix("/api/purchase-orders").Subrouter()
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/suggest-invoice-number", orderHandler.SuggestInvoiceNumber).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")
	ordersAPI.HandleFunc("/{id}/delivery-note.pdf", reportHandler.GetDeliveryNote).Methods("GET")

	// Appointments
	appointmentsAPI := r.PathPrefix("/api/appointments").Subrouter()
	appointmentsAPI.HandleFunc("", appointmentHandler.ListAppointments).Methods("GET")
	appointmentsAPI.HandleFunc("", appointmentHandler.CreateAppointment).Methods("POST")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.GetAppointment).Methods("GET")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.UpdateAppointment).Methods("PUT")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.DeleteAppointment).Methods("DELETE")

	// Shop settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.HandleFunc("", settingsHandler.GetSettings).Methods("GET")
	settingsAPI.HandleFunc("", settingsHandler.UpdateSettings).Methods("PUT")

	return r
}
