package demand

import (
	"context"
	"testing"
	"time"

	"maree/internal/core/id"
	"maree/internal/domain/documents/order"
)

func testHolidayMeta() HolidayMeta {
	return HolidayMeta{
		ID:        id.New(),
		Name:      "Christmas",
		StartDate: time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildReportNoOrders(t *testing.T) {
	agg := Aggregate(nil)
	rec := Reconcile(context.Background(), agg, nil)

	report := BuildReport(testHolidayMeta(), agg, rec)

	if report.Status != StatusNoOrders {
		t.Errorf("status = %v, want %v", report.Status, StatusNoOrders)
	}
	if report.TotalOrders != 0 {
		t.Errorf("total orders = %d, want 0", report.TotalOrders)
	}
}

func TestBuildReportSufficientStock(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Salmon", Quantity: qty(2)}),
	})
	stock := map[string]StockEntry{
		"salmon": stockKg("Salmon", 10),
	}
	rec := Reconcile(context.Background(), agg, stock)

	report := BuildReport(testHolidayMeta(), agg, rec)

	if report.Status != StatusSufficientStock {
		t.Errorf("status = %v, want %v", report.Status, StatusSufficientStock)
	}
	if report.TotalOrders != 1 {
		t.Errorf("total orders = %d, want 1", report.TotalOrders)
	}
	if len(report.Sufficient) != 1 {
		t.Errorf("len(Sufficient) = %d, want 1", len(report.Sufficient))
	}
}

func TestBuildReportWithDeficits(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Salmon", Quantity: qty(12.5)}),
	})
	stock := map[string]StockEntry{
		"salmon": stockKg("Salmon", 9),
	}
	rec := Reconcile(context.Background(), agg, stock)

	report := BuildReport(testHolidayMeta(), agg, rec)

	if report.Status != StatusGenerated {
		t.Errorf("status = %v, want %v", report.Status, StatusGenerated)
	}
	if len(report.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(report.Deficits))
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt must be set")
	}
}
