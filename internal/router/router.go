package router

import (
	"github.com/gin-gonic/gin"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/internal/handler"
	"metalflow/internal/middleware"
	"metalflow/internal/service"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Customer     *handler.CustomerHandler
	Supplier     *handler.SupplierHandler
	Product      *handler.ProductHandler
	Invoice      *handler.InvoiceHandler
	Payment      *handler.PaymentHandler
	Shipment     *handler.ShipmentHandler
	Batch        *handler.BatchHandler
	Inventory    *handler.InventoryHandler
	WireTransfer *handler.WireTransferHandler
	Stock        *handler.StockHandler
	Template     *handler.TemplateHandler
	Scan         *handler.ScanHandler
	File         *handler.FileHandler
	Report       *handler.ReportHandler
	History      *handler.StatusHistoryHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// User management
	users := protected.Group("/users")
	users.POST("", adminOnly, h.User.Create)
	users.GET("", adminOnly, h.User.List)
	users.GET("/:id", h.User.Get)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", adminOnly, h.User.Delete)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.Get)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", adminOnly, h.Customer.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	suppliers.POST("", h.Supplier.Create)
	suppliers.GET("", h.Supplier.List)
	suppliers.GET("/:id", h.Supplier.Get)
	suppliers.PUT("/:id", h.Supplier.Update)
	suppliers.DELETE("/:id", adminOnly, h.Supplier.Delete)

	// Products
	products := protected.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.Get)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", adminOnly, h.Product.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.POST("/generate-pdf", h.Invoice.GenerateAdHocPDF)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
	invoices.POST("/:id/pdf", h.Invoice.GeneratePDF)
	invoices.GET("/:id/payments", h.Payment.ListByInvoice)
	invoices.GET("/:id/wire-transfers", h.WireTransfer.ListByInvoice)
	invoices.DELETE("/:id", adminOnly, h.Invoice.Delete)

	// Payments
	payments := protected.Group("/payments")
	payments.POST("", h.Payment.Create)
	payments.GET("", h.Payment.List)
	payments.GET("/:id", h.Payment.Get)
	payments.PUT("/:id", h.Payment.Update)
	payments.PATCH("/:id/status", h.Payment.UpdateStatus)
	payments.DELETE("/:id", adminOnly, h.Payment.Delete)

	// Shipments
	shipments := protected.Group("/shipments")
	shipments.POST("", h.Shipment.Create)
	shipments.GET("", h.Shipment.List)
	shipments.GET("/:id", h.Shipment.Get)
	shipments.PUT("/:id", h.Shipment.Update)
	shipments.PATCH("/:id/status", h.Shipment.UpdateStatus)
	shipments.DELETE("/:id", adminOnly, h.Shipment.Delete)

	// Production batches
	batches := protected.Group("/batches")
	batches.POST("", h.Batch.Create)
	batches.GET("", h.Batch.List)
	batches.GET("/:id", h.Batch.Get)
	batches.PUT("/:id", h.Batch.Update)
	batches.PATCH("/:id/status", h.Batch.UpdateStatus)
	batches.DELETE("/:id", adminOnly, h.Batch.Delete)

	// Inventory
	inventory := protected.Group("/inventory")
	inventory.POST("", h.Inventory.Create)
	inventory.GET("", h.Inventory.List)
	inventory.GET("/:id", h.Inventory.Get)
	inventory.PUT("/:id", h.Inventory.Update)
	inventory.DELETE("/:id", adminOnly, h.Inventory.Delete)

	// Wire transfers
	transfers := protected.Group("/wire-transfers")
	transfers.POST("", h.WireTransfer.Create)
	transfers.GET("", h.WireTransfer.List)
	transfers.GET("/:id", h.WireTransfer.Get)
	transfers.POST("/:id/decide", adminOnly, h.WireTransfer.Decide)
	transfers.DELETE("/:id", adminOnly, h.WireTransfer.Delete)

	// Warehouse stock
	stock := protected.Group("/stock")
	stock.POST("/import", adminOnly, h.Stock.Import)
	stock.GET("", h.Stock.List)
	stock.GET("/uploads", h.Stock.ListUploads)

	// Invoice template
	template := protected.Group("/template")
	template.POST("", adminOnly, h.Template.Upload)
	template.GET("", h.Template.Get)
	template.DELETE("", adminOnly, h.Template.Delete)

	// Order scanning
	protected.POST("/orders/scan", h.Scan.Scan)

	// File attachments
	files := protected.Group("/files")
	files.POST("/:entity", h.File.Upload)
	files.GET("/:entity/:filename", h.File.Download)
	files.DELETE("/:entity/:filename", adminOnly, h.File.Delete)

	// Reports
	protected.GET("/reports/invoices", h.Report.InvoiceRegister)

	// Status history
	protected.GET("/status-history/:entityType/:id", h.History.ListByEntity)

	return r
}
