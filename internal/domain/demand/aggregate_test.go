package demand

import (
	"testing"
	"time"

	"maree/internal/core/types"
	"maree/internal/domain/documents/order"
)

func newTestOrder(lines ...order.Line) *order.Order {
	o := order.New("Test Customer", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC))
	for _, line := range lines {
		o.AddLine(line.ProductName, line.Quantity, line.UnitBased, line.SizeTag, types.NewMoney(10))
	}
	return o
}

func qty(v float64) types.Quantity {
	return types.NewQuantityFromFloat64(v)
}

func TestAggregateTotalsPerProduct(t *testing.T) {
	orders := []*order.Order{
		newTestOrder(
			order.Line{ProductName: "Salmon", Quantity: qty(2.5)},
			order.Line{ProductName: "Sea Bream", Quantity: qty(4), UnitBased: true, SizeTag: "L"},
		),
		newTestOrder(
			order.Line{ProductName: "salmon", Quantity: qty(1.5)},
			order.Line{ProductName: "Sea Bream", Quantity: qty(3), UnitBased: true},
		),
	}

	agg := Aggregate(orders)

	if agg.OrderCount != 2 {
		t.Fatalf("OrderCount = %d, want 2", agg.OrderCount)
	}
	if len(agg.OrderIDs) != 2 {
		t.Fatalf("len(OrderIDs) = %d, want 2", len(agg.OrderIDs))
	}

	// Product names aggregate case-insensitively.
	salmon, ok := agg.ByProduct["salmon"]
	if !ok {
		t.Fatal("salmon missing from aggregation")
	}
	if salmon.Total != qty(4.0) {
		t.Errorf("salmon total = %v, want 4.0", salmon.Total)
	}
	if salmon.LineCount != 2 {
		t.Errorf("salmon line count = %d, want 2", salmon.LineCount)
	}

	bream, ok := agg.ByProduct["sea bream"]
	if !ok {
		t.Fatal("sea bream missing from aggregation")
	}
	if bream.Total != qty(7) {
		t.Errorf("sea bream total = %v, want 7", bream.Total)
	}
	// First non-empty size tag wins.
	if bream.SizeTag != "L" {
		t.Errorf("sea bream size tag = %q, want L", bream.SizeTag)
	}
}

func TestAggregateSkipsNoiseLines(t *testing.T) {
	o := order.New("Test Customer", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC))
	o.Lines = []order.Line{
		{ProductName: "Salmon", Quantity: qty(2)},
		{ProductName: "", Quantity: qty(5)},
		{ProductName: "   ", Quantity: qty(5)},
		{ProductName: "Cod", Quantity: 0},
		{ProductName: "Tuna", Quantity: qty(-1)},
	}

	agg := Aggregate([]*order.Order{o})

	if len(agg.ByProduct) != 1 {
		t.Fatalf("len(ByProduct) = %d, want 1", len(agg.ByProduct))
	}
	if _, ok := agg.ByProduct["salmon"]; !ok {
		t.Error("salmon should survive noise filtering")
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := Aggregate(nil)

	if agg.OrderCount != 0 {
		t.Errorf("OrderCount = %d, want 0", agg.OrderCount)
	}
	if len(agg.ByProduct) != 0 {
		t.Errorf("len(ByProduct) = %d, want 0", len(agg.ByProduct))
	}
}

func TestAggregateAbsenceNotZero(t *testing.T) {
	orders := []*order.Order{
		newTestOrder(order.Line{ProductName: "Salmon", Quantity: qty(1)}),
	}

	agg := Aggregate(orders)

	// A product never ordered must be absent from the map, not present
	// with a zero total.
	if _, ok := agg.ByProduct["cod"]; ok {
		t.Error("cod should be absent, not zero")
	}
}

func TestAggregateIdempotent(t *testing.T) {
	orders := []*order.Order{
		newTestOrder(
			order.Line{ProductName: "Salmon", Quantity: qty(2.5)},
			order.Line{ProductName: "Oyster", Quantity: qty(12), UnitBased: true},
		),
	}

	first := Aggregate(orders)
	second := Aggregate(orders)

	if len(first.ByProduct) != len(second.ByProduct) {
		t.Fatal("repeated aggregation changed product count")
	}
	for key, pd := range first.ByProduct {
		if second.ByProduct[key].Total != pd.Total {
			t.Errorf("repeated aggregation changed total for %s", key)
		}
	}
}

func TestProductsSorted(t *testing.T) {
	orders := []*order.Order{
		newTestOrder(
			order.Line{ProductName: "Tuna", Quantity: qty(1)},
			order.Line{ProductName: "Cod", Quantity: qty(1)},
			order.Line{ProductName: "Salmon", Quantity: qty(1)},
		),
	}

	names := Aggregate(orders).Products()

	want := []string{"Cod", "Salmon", "Tuna"}
	if len(names) != len(want) {
		t.Fatalf("len(names) = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
