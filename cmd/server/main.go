package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"metalflow/internal/config"
	emailnoop "metalflow/internal/email/noop"
	emailses "metalflow/internal/email/ses"
	"metalflow/internal/handler"
	"metalflow/internal/pdf"
	"metalflow/internal/port"
	"metalflow/internal/repository/postgres"
	"metalflow/internal/router"
	"metalflow/internal/scanner/openai"
	"metalflow/internal/service"
	localstorage "metalflow/internal/storage/local"
	s3storage "metalflow/internal/storage/s3"
	"metalflow/internal/template"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	productRepo := postgres.NewProductRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	shipmentRepo := postgres.NewShipmentRepo(db)
	batchRepo := postgres.NewProductionBatchRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	transferRepo := postgres.NewWireTransferRepo(db)
	stockRepo := postgres.NewWarehouseStockRepo(db)
	historyRepo := postgres.NewStatusHistoryRepo(db)

	// Initialize storage
	var storage port.ObjectStorage
	switch cfg.Storage.Provider {
	case "s3":
		storage, err = s3storage.NewS3Storage(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	default:
		storage, err = localstorage.NewLocalStorage(cfg.Uploads.Dir)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = emailses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = emailnoop.NewNoopSender()
	}

	templateStore := template.NewStore(cfg.Template.Dir)
	engine := pdf.NewEngine()
	scanner := openai.NewScanner(&cfg.Scanner)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	productSvc := service.NewProductService(productRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, engine, templateStore)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo)
	shipmentSvc := service.NewShipmentService(shipmentRepo, customerRepo, invoiceRepo)
	batchSvc := service.NewProductionBatchService(batchRepo, productRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, productRepo)
	transferSvc := service.NewWireTransferService(transferRepo, invoiceRepo, sender, cfg.Email.AdminAddress)
	stockSvc := service.NewStockService(stockRepo)
	templateSvc := service.NewTemplateService(templateStore)
	scanSvc := service.NewOrderScanService(scanner, customerRepo, supplierRepo, productRepo, storage)
	fileSvc := service.NewFileService(storage, &cfg.Uploads)
	reportSvc := service.NewReportService(invoiceRepo, customerRepo)
	historySvc := service.NewStatusHistoryService(historyRepo)

	// Initialize handlers
	h := router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, userSvc),
		User:         handler.NewUserHandler(userSvc),
		Customer:     handler.NewCustomerHandler(customerSvc),
		Supplier:     handler.NewSupplierHandler(supplierSvc),
		Product:      handler.NewProductHandler(productSvc),
		Invoice:      handler.NewInvoiceHandler(invoiceSvc),
		Payment:      handler.NewPaymentHandler(paymentSvc),
		Shipment:     handler.NewShipmentHandler(shipmentSvc),
		Batch:        handler.NewBatchHandler(batchSvc),
		Inventory:    handler.NewInventoryHandler(inventorySvc),
		WireTransfer: handler.NewWireTransferHandler(transferSvc),
		Stock:        handler.NewStockHandler(stockSvc),
		Template:     handler.NewTemplateHandler(templateSvc),
		Scan:         handler.NewScanHandler(scanSvc),
		File:         handler.NewFileHandler(fileSvc),
		Report:       handler.NewReportHandler(reportSvc),
		History:      handler.NewStatusHistoryHandler(historySvc),
		Health:       handler.NewHealthHandler(db),
	}

	r := router.Setup(cfg, authSvc, h)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
