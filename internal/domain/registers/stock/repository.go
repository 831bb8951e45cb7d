// Package stock provides the stock register: one availability figure per
// product, always stored in kilograms regardless of how the product is
// sold. Single warehouse; the shop has one cold room.
package stock

import (
	"context"
	"time"

	"maree/internal/core/types"
)

// Balance is the stored availability for one product.
type Balance struct {
	ProductName       string         `db:"product_name" json:"productName"`
	AvailableWeightKg types.Quantity `db:"available_weight_kg" json:"availableWeightKg"`
	Active            bool           `db:"active" json:"active"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
}

// Repository defines operations for the stock register.
type Repository interface {
	// GetBalance returns the balance for one product.
	GetBalance(ctx context.Context, productName string) (Balance, error)

	// GetBalancesByNames returns balances for the named products,
	// inactive rows included. Missing products are simply absent from
	// the result.
	GetBalancesByNames(ctx context.Context, productNames []string) ([]Balance, error)

	// ListBalances returns all balances ordered by product name.
	ListBalances(ctx context.Context, excludeZero bool) ([]Balance, error)

	// UpsertBalance sets the absolute available weight for a product.
	UpsertBalance(ctx context.Context, productName string, weightKg types.Quantity, active bool) error

	// AdjustBalance applies a signed delta to a product's available weight.
	AdjustBalance(ctx context.Context, productName string, deltaKg types.Quantity) (Balance, error)
}
