package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"maree/internal/core/apperror"
	"maree/internal/core/id"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/infrastructure/storage/postgres"
)

const holidaysTable = "cat_holidays"

var holidayColumns = []string{
	"id", "version", "created_at", "updated_at",
	"name", "start_date", "end_date", "active",
}

// HolidayRepo implements holiday.Repository.
type HolidayRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewHolidayRepo creates a new holiday repository.
func NewHolidayRepo(txManager *postgres.TxManager) *HolidayRepo {
	return &HolidayRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a holiday.
func (r *HolidayRepo) Create(ctx context.Context, h *holiday.Holiday) error {
	q := r.builder.Insert(holidaysTable).
		Columns(holidayColumns...).
		Values(
			h.ID, h.Version, h.CreatedAt, h.UpdatedAt,
			h.Name, h.StartDate, h.EndDate, h.Active,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert holiday: %w", err)
	}
	return nil
}

// GetByID retrieves a holiday by primary key.
func (r *HolidayRepo) GetByID(ctx context.Context, holidayID id.ID) (*holiday.Holiday, error) {
	q := r.builder.Select(holidayColumns...).
		From(holidaysTable).
		Where(squirrel.Eq{"id": holidayID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var h holiday.Holiday
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &h, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("holiday", holidayID)
		}
		return nil, fmt.Errorf("select holiday: %w", err)
	}
	return &h, nil
}

// Update replaces holiday fields with optimistic locking.
func (r *HolidayRepo) Update(ctx context.Context, h *holiday.Holiday) error {
	q := r.builder.Update(holidaysTable).
		Set("version", h.Version).
		Set("updated_at", h.UpdatedAt).
		Set("name", h.Name).
		Set("start_date", h.StartDate).
		Set("end_date", h.EndDate).
		Set("active", h.Active).
		Where(squirrel.Eq{"id": h.ID}).
		Where(squirrel.Eq{"version": h.Version - 1})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConflict("holiday was modified by another user").
			WithDetail("holiday_id", h.ID.String())
	}
	return nil
}

// Delete removes a holiday.
func (r *HolidayRepo) Delete(ctx context.Context, holidayID id.ID) error {
	q := r.builder.Delete(holidaysTable).Where(squirrel.Eq{"id": holidayID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("holiday", holidayID)
	}
	return nil
}

// List retrieves holidays ordered by start date ascending.
func (r *HolidayRepo) List(ctx context.Context, activeOnly bool) ([]*holiday.Holiday, error) {
	q := r.builder.Select(holidayColumns...).
		From(holidaysTable).
		OrderBy("start_date ASC")

	if activeOnly {
		q = q.Where(squirrel.Eq{"active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var holidays []*holiday.Holiday
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &holidays, sql, args...); err != nil {
		return nil, fmt.Errorf("select holidays: %w", err)
	}
	return holidays, nil
}
