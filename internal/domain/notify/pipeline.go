package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/demand"
	"maree/internal/domain/documents/order"
	"maree/pkg/logger"
)

// OrderSource supplies orders for a delivery-date window.
type OrderSource interface {
	FindForWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*order.Order, error)
}

// StockSource supplies the stock snapshot for a set of product names.
type StockSource interface {
	SnapshotFor(ctx context.Context, productNames []string) (map[string]demand.StockEntry, error)
}

// HolidaySource supplies the holiday calendar.
type HolidaySource interface {
	List(ctx context.Context, activeOnly bool) ([]*holiday.Holiday, error)
}

// RunnerConfig configures the pipeline runner.
type RunnerConfig struct {
	// LookaheadDays is the trigger window (default 7).
	LookaheadDays int

	// HolidayOrdersOnly restricts aggregation to orders flagged as
	// holiday orders.
	HolidayOrdersOnly bool

	// MaxConcurrent bounds the per-holiday worker pool (default 4).
	MaxConcurrent int
}

// Runner executes the full pipeline for all due holidays.
type Runner struct {
	cfg      RunnerConfig
	holidays HolidaySource
	orders   OrderSource
	stocks   StockSource
	sinks    []Sink
}

// NewRunner creates a pipeline runner.
func NewRunner(cfg RunnerConfig, holidays HolidaySource, orders OrderSource, stocks StockSource, sinks ...Sink) *Runner {
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = demand.DefaultLookaheadDays
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	return &Runner{
		cfg:      cfg,
		holidays: holidays,
		orders:   orders,
		stocks:   stocks,
		sinks:    sinks,
	}
}

// RunResult is one holiday's pipeline outcome.
type RunResult struct {
	Holiday demand.HolidayMeta

	// Report is nil when Err is set.
	Report *demand.Report

	// Err is a data-access failure for this holiday only.
	Err error

	// DeliveryErrs lists sink failures by channel. The report in Report
	// was computed correctly regardless.
	DeliveryErrs map[string]error
}

// Run scans the calendar, processes every due holiday and delivers the
// reports. Holidays run concurrently and independently: one holiday's
// failure never aborts the others.
func (r *Runner) Run(ctx context.Context, now time.Time) ([]RunResult, error) {
	all, err := r.holidays.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	var due []*holiday.Holiday
	for _, h := range all {
		if demand.DueWithinLookahead(now, h.StartDate, r.cfg.LookaheadDays) {
			due = append(due, h)
		}
	}

	logger.Info(ctx, "holiday scan complete",
		"total", len(all),
		"due", len(due),
		"lookahead_days", r.cfg.LookaheadDays,
	)

	if len(due) == 0 {
		return nil, nil
	}

	results := make([]RunResult, len(due))
	sem := make(chan struct{}, r.cfg.MaxConcurrent)
	var wg sync.WaitGroup

	for i, h := range due {
		wg.Add(1)
		go func(i int, h *holiday.Holiday) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = r.processHoliday(ctx, h)
		}(i, h)
	}
	wg.Wait()

	return results, nil
}

// ProcessOne computes and delivers the report for a single holiday,
// regardless of the trigger window. Used by the on-demand API endpoint.
func (r *Runner) ProcessOne(ctx context.Context, h *holiday.Holiday) RunResult {
	return r.processHoliday(ctx, h)
}

// ComputeReport runs aggregation and reconciliation for one holiday
// without delivering anything.
func (r *Runner) ComputeReport(ctx context.Context, h *holiday.Holiday) (demand.Report, error) {
	meta := demand.HolidayMeta{
		ID:        h.ID,
		Name:      h.Name,
		StartDate: h.StartDate,
		EndDate:   h.EndDate,
	}

	orders, err := r.orders.FindForWindow(ctx, h.StartDate, h.EndDate, r.cfg.HolidayOrdersOnly)
	if err != nil {
		return demand.Report{}, fmt.Errorf("fetch orders for %q: %w", h.Name, err)
	}

	agg := demand.Aggregate(orders)

	snapshot, err := r.stocks.SnapshotFor(ctx, agg.Products())
	if err != nil {
		return demand.Report{}, fmt.Errorf("fetch stock for %q: %w", h.Name, err)
	}

	rec := demand.Reconcile(ctx, agg, snapshot)
	return demand.BuildReport(meta, agg, rec), nil
}

func (r *Runner) processHoliday(ctx context.Context, h *holiday.Holiday) RunResult {
	result := RunResult{
		Holiday: demand.HolidayMeta{
			ID:        h.ID,
			Name:      h.Name,
			StartDate: h.StartDate,
			EndDate:   h.EndDate,
		},
	}

	report, err := r.ComputeReport(ctx, h)
	if err != nil {
		logger.Error(ctx, "holiday pipeline failed",
			"holiday", h.Name,
			"error", err,
		)
		result.Err = err
		return result
	}
	result.Report = &report

	for _, sink := range r.sinks {
		if err := sink.Deliver(ctx, report); err != nil {
			logger.Error(ctx, "report delivery failed",
				"holiday", h.Name,
				"channel", sink.Name(),
				"error", err,
			)
			if result.DeliveryErrs == nil {
				result.DeliveryErrs = make(map[string]error)
			}
			result.DeliveryErrs[sink.Name()] = err
		}
	}

	logger.Info(ctx, "holiday processed",
		"holiday", h.Name,
		"status", report.Status,
		"orders", report.TotalOrders,
		"deficits", len(report.Deficits),
	)

	return result
}
