// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"maree/internal/domain/auth"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/catalogs/product"
	"maree/internal/domain/documents/order"
	"maree/internal/domain/notify"
	"maree/internal/domain/registers/stock"
	"maree/internal/infrastructure/http/v1/handlers"
	"maree/internal/infrastructure/http/v1/middleware"
	"maree/internal/infrastructure/storage/postgres"
	"maree/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	JWTValidator middleware.JWTValidator
	AuthService  *auth.Service

	ProductService *product.Service
	HolidayService *holiday.Service
	OrderService   *order.Service
	StockService   *stock.Service

	Runner        *notify.Runner
	ReportArchive *postgres.ReportArchive
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	// API v1
	api := router.Group("/api/v1")
	{
		// Storefront reads are public; everything mutating requires a token.
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())

		// --- AUTH ---
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		authHandler.RegisterRoutes(api.Group("/auth"), admin.Group("/auth"))

		// --- CATALOGS ---
		productHandler := handlers.NewProductHandler(base, cfg.ProductService)
		productHandler.RegisterRoutes(api.Group("/products"), protected.Group("/products"))

		holidayHandler := handlers.NewHolidayHandler(base, cfg.HolidayService)
		holidayHandler.RegisterRoutes(api.Group("/holidays"), protected.Group("/holidays"))

		// --- DOCUMENTS ---
		orderHandler := handlers.NewOrderHandler(base, cfg.OrderService)
		orderHandler.RegisterRoutes(api.Group("/orders"), protected.Group("/orders"))

		// --- REGISTERS ---
		stockHandler := handlers.NewStockHandler(base, cfg.StockService)
		stockHandler.RegisterRoutes(protected.Group("/stock"))

		// --- REPORTS ---
		reportsHandler := handlers.NewReportsHandler(base, cfg.HolidayService, cfg.Runner, cfg.ReportArchive)
		reportsHandler.RegisterRoutes(protected.Group("/reports"))
	}

	return router
}
