// Package register_repo provides PostgreSQL implementations for register
// repositories.
package register_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"maree/internal/core/apperror"
	"maree/internal/core/types"
	"maree/internal/domain/registers/stock"
	"maree/internal/infrastructure/storage/postgres"
)

const stockBalancesTable = "reg_stock_balances"

var stockColumns = []string{
	"product_name", "available_weight_kg", "active", "updated_at",
}

// StockRepo implements stock.Repository. Balances are keyed by
// lowercased product name.
type StockRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetBalance returns the balance for one product.
func (r *StockRepo) GetBalance(ctx context.Context, productName string) (stock.Balance, error) {
	q := r.builder.Select(stockColumns...).
		From(stockBalancesTable).
		Where(squirrel.Eq{"lower(product_name)": strings.ToLower(productName)})

	sql, args, err := q.ToSql()
	if err != nil {
		return stock.Balance{}, fmt.Errorf("build select: %w", err)
	}

	var b stock.Balance
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &b, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Balance{}, apperror.NewNotFound("stock balance", productName)
		}
		return stock.Balance{}, fmt.Errorf("select balance: %w", err)
	}
	return b, nil
}

// GetBalancesByNames returns balances for the named products, inactive
// rows included. Reconciliation needs the active flag to exclude inactive
// products itself; filtering them out here would make them indistinguishable
// from missing stock.
func (r *StockRepo) GetBalancesByNames(ctx context.Context, productNames []string) ([]stock.Balance, error) {
	if len(productNames) == 0 {
		return nil, nil
	}

	sql, args, err := r.balancesByNamesQuery(productNames)
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var balances []stock.Balance
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}
	return balances, nil
}

func (r *StockRepo) balancesByNamesQuery(productNames []string) (string, []any, error) {
	lowered := make([]string, len(productNames))
	for i, name := range productNames {
		lowered[i] = strings.ToLower(name)
	}

	return r.builder.Select(stockColumns...).
		From(stockBalancesTable).
		Where(squirrel.Eq{"lower(product_name)": lowered}).
		OrderBy("product_name ASC").
		ToSql()
}

// ListBalances returns all balances ordered by product name.
func (r *StockRepo) ListBalances(ctx context.Context, excludeZero bool) ([]stock.Balance, error) {
	q := r.builder.Select(stockColumns...).
		From(stockBalancesTable).
		OrderBy("product_name ASC")

	if excludeZero {
		q = q.Where(squirrel.Gt{"available_weight_kg": 0})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var balances []stock.Balance
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}
	return balances, nil
}

// UpsertBalance sets the absolute available weight for a product.
func (r *StockRepo) UpsertBalance(ctx context.Context, productName string, weightKg types.Quantity, active bool) error {
	sql := `
		INSERT INTO reg_stock_balances (product_name, available_weight_kg, active, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(product_name)) DO UPDATE SET
			available_weight_kg = EXCLUDED.available_weight_kg,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql,
		productName, weightKg, active, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// AdjustBalance applies a signed delta under a row lock and returns the
// resulting balance.
func (r *StockRepo) AdjustBalance(ctx context.Context, productName string, deltaKg types.Quantity) (stock.Balance, error) {
	var result stock.Balance

	err := r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		querier := r.txManager.GetQuerier(ctx)

		lockSQL := `
			SELECT product_name, available_weight_kg, active, updated_at
			FROM reg_stock_balances
			WHERE lower(product_name) = $1
			FOR UPDATE
		`
		var b stock.Balance
		if err := pgxscan.Get(ctx, querier, &b, lockSQL, strings.ToLower(productName)); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.NewNotFound("stock balance", productName)
			}
			return fmt.Errorf("lock balance: %w", err)
		}

		next := b.AvailableWeightKg + deltaKg
		if next.IsNegative() {
			return apperror.NewInsufficientStock(
				productName, deltaKg.Neg().Float64(), b.AvailableWeightKg.Float64(),
			)
		}

		updateSQL := `
			UPDATE reg_stock_balances
			SET available_weight_kg = $2, updated_at = $3
			WHERE lower(product_name) = $1
		`
		now := time.Now().UTC()
		if _, err := querier.Exec(ctx, updateSQL, strings.ToLower(productName), next, now); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		b.AvailableWeightKg = next
		b.UpdatedAt = now
		result = b
		return nil
	})
	if err != nil {
		return stock.Balance{}, err
	}
	return result, nil
}
