package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"maree/internal/core/types"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/demand"
	"maree/internal/domain/documents/order"
)

// --- fakes ---

type fakeHolidays struct {
	items []*holiday.Holiday
	err   error
}

func (f *fakeHolidays) List(ctx context.Context, activeOnly bool) ([]*holiday.Holiday, error) {
	return f.items, f.err
}

type fakeOrders struct {
	byHoliday map[string][]*order.Order
	err       error
}

func (f *fakeOrders) FindForWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byHoliday[from.Format("2006-01-02")], nil
}

type fakeStocks struct {
	snapshot map[string]demand.StockEntry
	err      error
}

func (f *fakeStocks) SnapshotFor(ctx context.Context, productNames []string) (map[string]demand.StockEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type fakeSink struct {
	name string
	err  error

	mu        sync.Mutex
	delivered []demand.Report
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Deliver(ctx context.Context, report demand.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, report)
	return nil
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.delivered)
}

// --- helpers ---

func testHoliday(name string, start time.Time) *holiday.Holiday {
	return holiday.New(name, start, start.AddDate(0, 0, 2))
}

func orderWithLine(deliveryDate time.Time, productName string, kg float64) *order.Order {
	o := order.New("Customer", deliveryDate)
	o.IsHolidayOrder = true
	o.AddLine(productName, types.NewQuantityFromFloat64(kg), false, "", types.NewMoney(20))
	return o
}

// --- tests ---

func TestRunProcessesDueHolidays(t *testing.T) {
	now := time.Date(2025, 12, 17, 9, 0, 0, 0, time.UTC)
	christmasStart := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	easterStart := time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)

	holidays := &fakeHolidays{items: []*holiday.Holiday{
		testHoliday("Christmas", christmasStart),
		testHoliday("Easter", easterStart), // outside lookahead window
	}}
	orders := &fakeOrders{byHoliday: map[string][]*order.Order{
		"2025-12-24": {orderWithLine(christmasStart, "Salmon", 12.5)},
	}}
	stocks := &fakeStocks{snapshot: map[string]demand.StockEntry{
		"salmon": {ProductName: "Salmon", AvailableWeightKg: types.NewQuantityFromFloat64(9), Active: true},
	}}
	sink := &fakeSink{name: "test"}

	runner := NewRunner(RunnerConfig{LookaheadDays: 7}, holidays, orders, stocks, sink)

	results, err := runner.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (Easter is out of window)", len(results))
	}
	if results[0].Holiday.Name != "Christmas" {
		t.Errorf("processed holiday = %q, want Christmas", results[0].Holiday.Name)
	}
	if results[0].Report == nil {
		t.Fatal("report missing")
	}
	if results[0].Report.Status != demand.StatusGenerated {
		t.Errorf("status = %v, want %v", results[0].Report.Status, demand.StatusGenerated)
	}
	if sink.count() != 1 {
		t.Errorf("sink deliveries = %d, want 1", sink.count())
	}
}

func TestRunNoOrdersStillDelivers(t *testing.T) {
	now := time.Date(2025, 12, 17, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	holidays := &fakeHolidays{items: []*holiday.Holiday{testHoliday("Quiet Holiday", start)}}
	sink := &fakeSink{name: "test"}

	runner := NewRunner(RunnerConfig{}, holidays, &fakeOrders{}, &fakeStocks{}, sink)

	results, err := runner.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Report.Status != demand.StatusNoOrders {
		t.Errorf("status = %v, want %v", results[0].Report.Status, demand.StatusNoOrders)
	}
	if sink.count() != 1 {
		t.Errorf("empty-window reports must still be delivered, got %d deliveries", sink.count())
	}
}

func TestRunHolidayFailureIsIsolated(t *testing.T) {
	now := time.Date(2025, 12, 17, 9, 0, 0, 0, time.UTC)

	okStart := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	badStart := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)

	holidays := &fakeHolidays{items: []*holiday.Holiday{
		testHoliday("Good", okStart),
		testHoliday("Bad", badStart),
	}}

	// Order fetch fails only for the second holiday's window.
	orders := &failingOrders{failFrom: badStart}
	sink := &fakeSink{name: "test"}

	runner := NewRunner(RunnerConfig{}, holidays, orders, &fakeStocks{}, sink)

	results, err := runner.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	byName := make(map[string]RunResult, len(results))
	for _, r := range results {
		byName[r.Holiday.Name] = r
	}

	if byName["Good"].Err != nil {
		t.Errorf("Good holiday failed: %v", byName["Good"].Err)
	}
	if byName["Bad"].Err == nil {
		t.Error("Bad holiday should carry its error")
	}
	if byName["Bad"].Report != nil {
		t.Error("failed holiday must not produce a report")
	}
}

type failingOrders struct {
	failFrom time.Time
}

func (f *failingOrders) FindForWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*order.Order, error) {
	if from.Equal(f.failFrom) {
		return nil, errors.New("connection reset")
	}
	return nil, nil
}

func TestSinkFailureDoesNotFailRun(t *testing.T) {
	now := time.Date(2025, 12, 17, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	holidays := &fakeHolidays{items: []*holiday.Holiday{testHoliday("Christmas", start)}}
	broken := &fakeSink{name: "email", err: errors.New("smtp refused")}
	working := &fakeSink{name: "webhook"}

	runner := NewRunner(RunnerConfig{}, holidays, &fakeOrders{}, &fakeStocks{}, broken, working)

	results, err := runner.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	r := results[0]
	if r.Err != nil {
		t.Errorf("run error = %v, delivery failures must not fail the run", r.Err)
	}
	if r.Report == nil {
		t.Fatal("report must be computed despite sink failure")
	}
	if _, ok := r.DeliveryErrs["email"]; !ok {
		t.Error("email failure should be recorded")
	}
	if working.count() != 1 {
		t.Error("remaining sinks must still receive the report")
	}
}

func TestRenderTextStatuses(t *testing.T) {
	meta := demand.HolidayMeta{
		Name:      "Christmas",
		StartDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
	}

	noOrders := demand.Report{Holiday: meta, Status: demand.StatusNoOrders, GeneratedAt: time.Now()}
	if text := RenderText(noOrders); !strings.Contains(text, "No orders") {
		t.Errorf("no-orders rendering missing marker:\n%s", text)
	}

	sufficient := demand.Report{Holiday: meta, Status: demand.StatusSufficientStock, TotalOrders: 3, GeneratedAt: time.Now()}
	if text := RenderText(sufficient); !strings.Contains(text, "Nothing to purchase") {
		t.Errorf("sufficient rendering missing marker:\n%s", text)
	}

	generated := demand.Report{
		Holiday:     meta,
		Status:      demand.StatusGenerated,
		TotalOrders: 3,
		Deficits: []demand.DeficitEntry{{
			ProductName:  "Salmon",
			Unit:         demand.UnitWeight,
			TotalDemand:  types.NewQuantityFromFloat64(12.5),
			CurrentStock: types.NewQuantityFromFloat64(9),
			Deficit:      types.NewQuantityFromFloat64(3.5),
		}},
		GeneratedAt: time.Now(),
	}
	text := RenderText(generated)
	if !strings.Contains(text, "Salmon") || !strings.Contains(text, "SHORT") {
		t.Errorf("deficit rendering missing product line:\n%s", text)
	}
}
