// Package main is the entry point for the maree background worker.
// It scans the holiday calendar on a fixed interval and delivers
// demand reports for every holiday due within the lookahead window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/documents/order"
	"maree/internal/domain/notify"
	"maree/internal/domain/registers/stock"
	"maree/internal/infrastructure/storage/postgres"
	"maree/internal/infrastructure/storage/postgres/catalog_repo"
	"maree/internal/infrastructure/storage/postgres/document_repo"
	"maree/internal/infrastructure/storage/postgres/register_repo"
	"maree/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting maree worker")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	holidayService := holiday.NewService(catalog_repo.NewHolidayRepo(txManager))
	orderService := order.NewService(document_repo.NewOrderRepo(txManager))
	stockService := stock.NewService(register_repo.NewStockRepo(txManager))

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

	interval := getEnvDuration("REPORT_CHECK_INTERVAL", 24*time.Hour)
	worker := &Worker{
		runner:   runner,
		interval: interval,
		log:      log.WithComponent("worker"),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// Worker runs the report pipeline on a fixed interval.
type Worker struct {
	runner   *notify.Runner
	interval time.Duration
	log      *logger.Logger
}

// Run executes one pass immediately, then once per interval until the
// context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	started := time.Now()

	results, err := w.runner.Run(ctx, started)
	if err != nil {
		w.log.Errorw("report run failed", "error", err)
		return
	}

	var failed, delivered int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			w.log.Errorw("holiday failed",
				"holiday", r.Holiday.Name,
				"error", r.Err,
			)
		default:
			delivered++
			if len(r.DeliveryErrs) > 0 {
				for channel, err := range r.DeliveryErrs {
					w.log.Warnw("delivery channel failed",
						"holiday", r.Holiday.Name,
						"channel", channel,
						"error", err,
					)
				}
			}
		}
	}

	w.log.Infow("report run complete",
		"holidays", len(results),
		"delivered", delivered,
		"failed", failed,
		"took_ms", time.Since(started).Milliseconds(),
	)
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
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
