package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"optic-backend/internal/config"
	"optic-backend/internal/handlers"
	"optic-backend/internal/health"
	h "optic-backend/internal/http"
	"optic-backend/internal/middleware"
	"optic-backend/internal/repositories"
	"optic-backend/internal/services"
	"optic-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	dbPath := flag.String("db", "", "Snapshot file path (overrides config)")
	noSeed := flag.Bool("no-seed", false, "Start with an empty database instead of demo data")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}
	if *noSeed {
		cfg.Storage.Seed = false
	}

	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	// Disaster recovery: with no local snapshot and a configured
	// bucket, pull the latest off-site copy before opening the store
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 60*time.Second)
	if restored, err := services.RestoreIfMissing(restoreCtx, cfg.Backup, cfg.Storage.Path); err != nil {
		log.Printf("[Backup] Restore from off-site backup failed: %v, starting with seed data", err)
	} else if restored {
		log.Printf("[Backup] Local snapshot restored from off-site backup")
	}
	cancelRestore()

	// Open the snapshot store, seeding demo data on first run
	defaults := storage.Snapshot{}
	if cfg.Storage.Seed {
		defaults = storage.SeedSnapshot()
	}
	store := storage.Open(cfg.Storage.Path, defaults)
	log.Printf("[Storage] Snapshot loaded from %s", store.Path())

	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(store)
	productRepo := repositories.NewProductRepository(store)
	supplierRepo := repositories.NewSupplierRepository(store)
	staffRepo := repositories.NewStaffRepository(store)
	saleRepo := repositories.NewSaleRepository(store)
	orderRepo := repositories.NewPurchaseOrderRepository(store)
	appointmentRepo := repositories.NewAppointmentRepository(store)
	settingsRepo := repositories.NewSettingsRepository(store)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	staffService := services.NewStaffService(staffRepo)
	saleService := services.NewSaleService(saleRepo, productRepo, customerRepo, staffRepo, settingsRepo)
	orderService := services.NewPurchaseOrderService(orderRepo, productRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	reportService := services.NewReportService(saleRepo, customerRepo, staffRepo, supplierRepo, orderRepo, settingsRepo)
	backupService := services.NewBackupService(store, cfg.Backup)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler()
	customerHandler := handlers.NewCustomerHandler(customerService, saleService)
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	staffHandler := handlers.NewStaffHandler(staffService)
	saleHandler := handlers.NewSaleHandler(saleService)
	orderHandler := handlers.NewPurchaseOrderHandler(orderService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(store))

	// Push every persisted mutation to connected WebSocket clients
	store.OnChange(eventsHandler.NotifyChange)

	// Off-site snapshot backups
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go backupService.Run(ctx)

	router := h.NewRouter(
		customerHandler,
		productHandler,
		supplierHandler,
		staffHandler,
		saleHandler,
		orderHandler,
		appointmentHandler,
		settingsHandler,
		reportHandler,
		healthHandler,
		eventsHandler,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			corsMiddleware(router),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
