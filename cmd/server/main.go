// Package main is the entry point for the maree API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"maree/internal/domain/auth"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/catalogs/product"
	"maree/internal/domain/documents/order"
	"maree/internal/domain/notify"
	"maree/internal/domain/registers/stock"
	v1 "maree/internal/infrastructure/http/v1"
	"maree/internal/infrastructure/storage/postgres"
	"maree/internal/infrastructure/storage/postgres/auth_repo"
	"maree/internal/infrastructure/storage/postgres/catalog_repo"
	"maree/internal/infrastructure/storage/postgres/document_repo"
	"maree/internal/infrastructure/storage/postgres/register_repo"
	"maree/pkg/logger"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting maree server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	productRepo := catalog_repo.NewProductRepo(txManager)
	holidayRepo := catalog_repo.NewHolidayRepo(txManager)
	orderRepo := document_repo.NewOrderRepo(txManager)
	stockRepo := register_repo.NewStockRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)

	// --- Services ---
	productService := product.NewService(productRepo)
	holidayService := holiday.NewService(holidayRepo)
	orderService := order.NewService(orderRepo)
	stockService := stock.NewService(stockRepo)

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(userRepo, jwtService)

	// --- Report pipeline ---
	archive, err := postgres.NewReportArchive(txManager)
	if err != nil {
		log.Fatalw("failed to initialize report archive", "error", err)
	}

	sinks := []notify.Sink{archive}

	if host := getEnv("SMTP_HOST", ""); host != "" {
		sinks = append(sinks, notify.NewEmailSink(notify.EmailConfig{
			Host:     host,
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "reports@maree.local"),
			To:       splitList(getEnv("REPORT_RECIPIENTS", "")),
		}))
	}

	if url := getEnv("REPORT_WEBHOOK_URL", ""); url != "" {
		sinks = append(sinks, notify.NewWebhookSink(url))
	}

	runner := notify.NewRunner(notify.RunnerConfig{
		LookaheadDays:     getEnvInt("REPORT_LOOKAHEAD_DAYS", 7),
		HolidayOrdersOnly: getEnv("REPORT_HOLIDAY_ORDERS_ONLY", "false") == "true",
		MaxConcurrent:     getEnvInt("REPORT_MAX_CONCURRENT", 4),
	}, holidayService, orderService, stockService, sinks...)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		ProductService: productService,
		HolidayService: holidayService,
		OrderService:   orderService,
		StockService:   stockService,
		Runner:         runner,
		ReportArchive:  archive,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
