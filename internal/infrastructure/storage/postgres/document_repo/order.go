// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"maree/internal/core/apperror"
	"maree/internal/core/id"
	"maree/internal/domain/documents/order"
	"maree/internal/infrastructure/storage/postgres"
)

const (
	ordersTable     = "doc_orders"
	orderLinesTable = "doc_order_lines"
)

var orderColumns = []string{
	"id", "version", "created_at", "updated_at",
	"number", "customer_name", "customer_phone", "customer_email",
	"delivery_date", "is_holiday_order", "comment", "total_amount",
}

var orderLineColumns = []string{
	"line_id", "order_id", "line_no",
	"product_name", "quantity", "unit_based", "size_tag",
	"unit_price", "amount",
}

// OrderRepo implements order.Repository.
type OrderRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts the order header and lines in one transaction.
func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.builder.Insert(ordersTable).
			Columns(orderColumns...).
			Values(
				o.ID, o.Version, o.CreatedAt, o.UpdatedAt,
				o.Number, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
				o.DeliveryDate, o.IsHolidayOrder, o.Comment, o.TotalAmount,
			)

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		return r.insertLines(ctx, o.ID, o.Lines)
	})
}

func (r *OrderRepo) insertLines(ctx context.Context, orderID id.ID, lines []order.Line) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.builder.Insert(orderLinesTable).Columns(orderLineColumns...)
	for _, line := range lines {
		q = q.Values(
			line.LineID, orderID, line.LineNo,
			line.ProductName, line.Quantity, line.UnitBased, line.SizeTag,
			line.UnitPrice, line.Amount,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build lines insert: %w", err)
	}
	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert order lines: %w", err)
	}
	return nil
}

// GetByID retrieves an order with its lines.
func (r *OrderRepo) GetByID(ctx context.Context, orderID id.ID) (*order.Order, error) {
	q := r.builder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"id": orderID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var o order.Order
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &o, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("order", orderID)
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	lines, err := r.loadLines(ctx, []id.ID{orderID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[orderID]
	return &o, nil
}

// orderLineRow carries the order_id join column alongside the line.
type orderLineRow struct {
	order.Line
	OrderID id.ID `db:"order_id"`
}

func (r *OrderRepo) loadLines(ctx context.Context, orderIDs []id.ID) (map[id.ID][]order.Line, error) {
	if len(orderIDs) == 0 {
		return map[id.ID][]order.Line{}, nil
	}

	q := r.builder.Select(orderLineColumns...).
		From(orderLinesTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "line_no ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lines select: %w", err)
	}

	var rows []orderLineRow
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select order lines: %w", err)
	}

	lines := make(map[id.ID][]order.Line, len(orderIDs))
	for _, row := range rows {
		lines[row.OrderID] = append(lines[row.OrderID], row.Line)
	}
	return lines, nil
}

// Update replaces the order and rewrites its lines.
func (r *OrderRepo) Update(ctx context.Context, o *order.Order) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.builder.Update(ordersTable).
			Set("version", o.Version).
			Set("updated_at", o.UpdatedAt).
			Set("customer_name", o.CustomerName).
			Set("customer_phone", o.CustomerPhone).
			Set("customer_email", o.CustomerEmail).
			Set("delivery_date", o.DeliveryDate).
			Set("is_holiday_order", o.IsHolidayOrder).
			Set("comment", o.Comment).
			Set("total_amount", o.TotalAmount).
			Where(squirrel.Eq{"id": o.ID}).
			Where(squirrel.Eq{"version": o.Version - 1})

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}

		tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.NewConflict("order was modified by another user").
				WithDetail("order_id", o.ID.String())
		}

		delSQL, delArgs, err := r.builder.Delete(orderLinesTable).
			Where(squirrel.Eq{"order_id": o.ID}).ToSql()
		if err != nil {
			return fmt.Errorf("build lines delete: %w", err)
		}
		if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, delSQL, delArgs...); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}

		return r.insertLines(ctx, o.ID, o.Lines)
	})
}

// Delete removes the order and its lines.
func (r *OrderRepo) Delete(ctx context.Context, orderID id.ID) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		delLines, delLinesArgs, err := r.builder.Delete(orderLinesTable).
			Where(squirrel.Eq{"order_id": orderID}).ToSql()
		if err != nil {
			return fmt.Errorf("build lines delete: %w", err)
		}
		if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, delLines, delLinesArgs...); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}

		delOrder, delOrderArgs, err := r.builder.Delete(ordersTable).
			Where(squirrel.Eq{"id": orderID}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, delOrder, delOrderArgs...)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.NewNotFound("order", orderID)
		}
		return nil
	})
}

// List retrieves order headers matching the filter, newest first.
// Lines are not loaded for listings.
func (r *OrderRepo) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	q := r.builder.Select(orderColumns...).
		From(ordersTable).
		OrderBy("delivery_date DESC", "created_at DESC")

	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"delivery_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"delivery_date": *filter.ToDate})
	}
	if filter.HolidayOnly {
		q = q.Where(squirrel.Eq{"is_holiday_order": true})
	}
	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"customer_name": "%" + filter.Search + "%"})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var orders []*order.Order
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &orders, sql, args...); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return orders, nil
}

// FindByDeliveryWindow retrieves orders in [from, to] inclusive, with
// lines loaded. This feeds the demand aggregator.
func (r *OrderRepo) FindByDeliveryWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*order.Order, error) {
	q := r.builder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.GtOrEq{"delivery_date": from}).
		Where(squirrel.LtOrEq{"delivery_date": to}).
		OrderBy("delivery_date ASC", "created_at ASC")

	if holidayOnly {
		q = q.Where(squirrel.Eq{"is_holiday_order": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var orders []*order.Order
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &orders, sql, args...); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]id.ID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Lines = lines[o.ID]
	}
	return orders, nil
}
