// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"maree/internal/core/types"
	"maree/internal/domain/auth"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/catalogs/product"
	"maree/internal/domain/documents/order"
	"maree/internal/domain/registers/stock"
	"maree/internal/infrastructure/storage/postgres"
	"maree/internal/infrastructure/storage/postgres/auth_repo"
	"maree/internal/infrastructure/storage/postgres/catalog_repo"
	"maree/internal/infrastructure/storage/postgres/document_repo"
	"maree/internal/infrastructure/storage/postgres/register_repo"
	"maree/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	if err := seedAdminUser(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if err := seedCatalog(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed catalog", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, txManager, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := auth_repo.NewUserRepo(txManager)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@maree.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	if existing, err := repo.GetByEmail(ctx, email); err == nil && existing != nil {
		log.Infow("admin user already exists", "email", email)
		return nil
	}

	user, err := auth.NewUser(email, password, "Administrator")
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	user.IsAdmin = true

	if err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", email)
	return nil
}

// seedProduct describes one catalog entry to create.
type seedProduct struct {
	name         string
	price        string
	soldByWeight bool
}

var catalogProducts = []seedProduct{
	{"Salmon", "24.90", true},
	{"Salmon Fillet", "29.50", true},
	{"Cod", "19.50", true},
	{"Tuna", "32.00", true},
	{"Swordfish", "28.00", true},
	{"Monkfish", "26.50", true},
	{"Octopus", "21.00", true},
	{"Squid", "16.50", true},
	{"Shrimp", "22.00", true},
	{"Mussels", "6.50", true},
	{"Clams", "14.00", true},
	{"Anchovy", "9.80", true},
	{"Sardines", "8.50", true},
	{"Sea Bream", "18.00", false},
	{"Sea Bass", "21.50", false},
	{"Trout", "12.00", false},
	{"Lobster", "48.00", false},
	{"Crab", "19.00", false},
	{"Sole", "24.00", false},
	{"Mackerel", "9.50", false},
	{"Red Mullet", "22.50", false},
	{"John Dory", "34.00", false},
	{"Oyster", "3.20", false},
	{"Scallop", "4.50", false},
}

func seedCatalog(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	productService := product.NewService(catalog_repo.NewProductRepo(txManager))
	holidayService := holiday.NewService(catalog_repo.NewHolidayRepo(txManager))

	var created int
	for _, sp := range catalogProducts {
		p := product.New(sp.name, types.MustMoney(sp.price), sp.soldByWeight)
		if err := productService.Create(ctx, p); err != nil {
			// Duplicates are fine on re-runs.
			continue
		}
		created++
	}
	log.Infow("products seeded", "created", created, "total", len(catalogProducts))

	year := time.Now().Year()
	holidays := []*holiday.Holiday{
		holiday.New("Christmas", date(year, 12, 24), date(year, 12, 26)),
		holiday.New("New Year's Eve", date(year, 12, 31), date(year+1, 1, 1)),
		holiday.New("Easter", date(year+1, 4, 4), date(year+1, 4, 6)),
	}

	created = 0
	for _, h := range holidays {
		if err := holidayService.Create(ctx, h); err != nil {
			continue
		}
		created++
	}
	log.Infow("holidays seeded", "created", created)

	return nil
}

func seedDemoData(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	stockService := stock.NewService(register_repo.NewStockRepo(txManager))
	orderService := order.NewService(document_repo.NewOrderRepo(txManager))

	balances := map[string]float64{
		"Salmon":    40.0,
		"Cod":       25.0,
		"Sea Bream": 12.0,
		"Sea Bass":  9.0,
		"Shrimp":    15.0,
		"Oyster":    5.4,
		"Mussels":   30.0,
	}
	for name, kg := range balances {
		if err := stockService.SetAvailability(ctx, name, types.NewQuantityFromFloat64(kg), true); err != nil {
			return fmt.Errorf("seed stock for %s: %w", name, err)
		}
	}
	log.Infow("stock balances seeded", "count", len(balances))

	deliveryDate := date(time.Now().Year(), 12, 24)

	o := order.New("Marta Ferran", deliveryDate)
	o.CustomerPhone = "+34 600 123 456"
	o.IsHolidayOrder = true
	o.AddLine("Salmon", types.NewQuantityFromFloat64(2.5), false, "", types.MustMoney("24.90"))
	o.AddLine("Sea Bream", types.NewQuantityFromFloat64(4), true, "L", types.MustMoney("18.00"))
	if err := orderService.Create(ctx, o); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}

	o = order.New("Joan Puig", deliveryDate)
	o.IsHolidayOrder = true
	o.AddLine("Oyster", types.NewQuantityFromFloat64(24), true, "", types.MustMoney("3.20"))
	o.AddLine("Cod", types.NewQuantityFromFloat64(1.2), false, "", types.MustMoney("19.50"))
	if err := orderService.Create(ctx, o); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}

	log.Info("demo orders seeded")
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
