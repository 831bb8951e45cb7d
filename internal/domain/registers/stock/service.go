package stock

import (
	"context"
	"fmt"
	"strings"

	"maree/internal/core/apperror"
	"maree/internal/core/types"
	"maree/internal/domain/demand"
	"maree/pkg/logger"
)

// Service provides business operations for the stock register.
type Service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetAvailability sets the absolute available weight for a product.
func (s *Service) SetAvailability(ctx context.Context, productName string, weightKg types.Quantity, active bool) error {
	if strings.TrimSpace(productName) == "" {
		return apperror.NewValidation("product name is required")
	}
	if weightKg.IsNegative() {
		return apperror.NewValidation("available weight cannot be negative").
			WithDetail("product", productName).
			WithDetail("weight_kg", weightKg.String())
	}

	if err := s.repo.UpsertBalance(ctx, productName, weightKg, active); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}

	logger.Info(ctx, "stock availability set",
		"product", productName,
		"weight_kg", weightKg.String(),
	)
	return nil
}

// Adjust applies a signed delta (delivery in, sale out) to a product's
// availability. The resulting balance must not go negative.
func (s *Service) Adjust(ctx context.Context, productName string, deltaKg types.Quantity) (Balance, error) {
	current, err := s.repo.GetBalance(ctx, productName)
	if err != nil && !apperror.IsNotFound(err) {
		return Balance{}, fmt.Errorf("get balance: %w", err)
	}

	next := current.AvailableWeightKg + deltaKg
	if next.IsNegative() {
		return Balance{}, apperror.NewInsufficientStock(
			productName,
			deltaKg.Neg().Float64(),
			current.AvailableWeightKg.Float64(),
		)
	}

	balance, err := s.repo.AdjustBalance(ctx, productName, deltaKg)
	if err != nil {
		return Balance{}, fmt.Errorf("adjust balance: %w", err)
	}
	return balance, nil
}

// List returns all balances ordered by product name.
func (s *Service) List(ctx context.Context, excludeZero bool) ([]Balance, error) {
	return s.repo.ListBalances(ctx, excludeZero)
}

// SnapshotFor builds the reconciliation stock snapshot for the named
// products, keyed by lowercased product name. Inactive products stay in
// the snapshot with their active flag so reconciliation can exclude them
// rather than mistake them for missing stock.
func (s *Service) SnapshotFor(ctx context.Context, productNames []string) (map[string]demand.StockEntry, error) {
	balances, err := s.repo.GetBalancesByNames(ctx, productNames)
	if err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}

	snapshot := make(map[string]demand.StockEntry, len(balances))
	for _, b := range balances {
		snapshot[strings.ToLower(b.ProductName)] = demand.StockEntry{
			ProductName:       b.ProductName,
			AvailableWeightKg: b.AvailableWeightKg,
			Active:            b.Active,
		}
	}
	return snapshot, nil
}
