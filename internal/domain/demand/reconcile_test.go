package demand

import (
	"context"
	"testing"

	"maree/internal/core/types"
	"maree/internal/domain/documents/order"
)

func stockKg(name string, kg float64) StockEntry {
	return StockEntry{
		ProductName:       name,
		AvailableWeightKg: types.NewQuantityFromFloat64(kg),
		Active:            true,
	}
}

func TestReconcileWeightDeficit(t *testing.T) {
	// 12.5 kg of salmon demanded, 9 kg in stock: 3.5 kg short.
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Salmon", Quantity: qty(12.5)}),
	})
	stock := map[string]StockEntry{
		"salmon": stockKg("Salmon", 9),
	}

	rec := Reconcile(context.Background(), agg, stock)

	if len(rec.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(rec.Deficits))
	}
	d := rec.Deficits[0]
	if d.Unit != UnitWeight {
		t.Errorf("unit = %v, want kg", d.Unit)
	}
	if d.Deficit != qty(3.5) {
		t.Errorf("deficit = %v, want 3.5", d.Deficit)
	}
	if d.CurrentStock != qty(9) {
		t.Errorf("current stock = %v, want 9", d.CurrentStock)
	}
}

func TestReconcileCountDeficitViaAverageWeight(t *testing.T) {
	// 10 sea bream demanded at the 0.5 kg medium average; 4 kg of stock
	// converts to 8 whole fish, leaving a 2-fish deficit.
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Sea Bream", Quantity: qty(10), UnitBased: true}),
	})
	stock := map[string]StockEntry{
		"sea bream": stockKg("Sea Bream", 4),
	}

	rec := Reconcile(context.Background(), agg, stock)

	if len(rec.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(rec.Deficits))
	}
	d := rec.Deficits[0]
	if d.Unit != UnitCount {
		t.Errorf("unit = %v, want pcs", d.Unit)
	}
	if d.CurrentStock.Units() != 8 {
		t.Errorf("current stock = %d units, want 8", d.CurrentStock.Units())
	}
	if d.Deficit.Units() != 2 {
		t.Errorf("deficit = %d units, want 2", d.Deficit.Units())
	}
}

func TestReconcileSizeTagSelectsBucket(t *testing.T) {
	// 14 large sea bream at 0.7 kg average; 7 kg of stock is 10 fish,
	// so 4 short. With the medium bucket the same stock would be 14 fish
	// and no deficit.
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Sea Bream", Quantity: qty(14), UnitBased: true, SizeTag: "L"}),
	})
	stock := map[string]StockEntry{
		"sea bream": stockKg("Sea Bream", 7),
	}

	rec := Reconcile(context.Background(), agg, stock)

	if len(rec.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(rec.Deficits))
	}
	if got := rec.Deficits[0].Deficit.Units(); got != 4 {
		t.Errorf("deficit = %d units, want 4", got)
	}
}

func TestReconcileMissingStockCountsAsZero(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Monkfish", Quantity: qty(6)}),
	})

	rec := Reconcile(context.Background(), agg, map[string]StockEntry{})

	if len(rec.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(rec.Deficits))
	}
	d := rec.Deficits[0]
	if !d.CurrentStock.IsZero() {
		t.Errorf("current stock = %v, want 0", d.CurrentStock)
	}
	if d.Deficit != qty(6) {
		t.Errorf("deficit = %v, want 6", d.Deficit)
	}
}

func TestReconcileInactiveProductExcluded(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(
			order.Line{ProductName: "Salmon", Quantity: qty(5)},
			order.Line{ProductName: "Cod", Quantity: qty(5)},
		),
	})
	stock := map[string]StockEntry{
		"salmon": stockKg("Salmon", 1),
		"cod":    {ProductName: "Cod", AvailableWeightKg: qty(1), Active: false},
	}

	rec := Reconcile(context.Background(), agg, stock)

	for _, d := range rec.Deficits {
		if d.ProductName == "Cod" {
			t.Error("inactive product must not appear in deficits")
		}
	}
	for _, s := range rec.Sufficient {
		if s.ProductName == "Cod" {
			t.Error("inactive product must not appear in sufficient list")
		}
	}
	if len(rec.Deficits) != 1 {
		t.Fatalf("len(Deficits) = %d, want 1", len(rec.Deficits))
	}
}

func TestReconcileSufficientStock(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(order.Line{ProductName: "Salmon", Quantity: qty(3)}),
	})
	stock := map[string]StockEntry{
		"salmon": stockKg("Salmon", 10),
	}

	rec := Reconcile(context.Background(), agg, stock)

	if len(rec.Deficits) != 0 {
		t.Fatalf("len(Deficits) = %d, want 0", len(rec.Deficits))
	}
	if len(rec.Sufficient) != 1 {
		t.Fatalf("len(Sufficient) = %d, want 1", len(rec.Sufficient))
	}
	if rec.Sufficient[0].CurrentStock != qty(10) {
		t.Errorf("current stock = %v, want 10", rec.Sufficient[0].CurrentStock)
	}
}

func TestReconcileDeficitOrdering(t *testing.T) {
	agg := Aggregate([]*order.Order{
		newTestOrder(
			order.Line{ProductName: "Tuna", Quantity: qty(5)},
			order.Line{ProductName: "Anchovy", Quantity: qty(5)},
			order.Line{ProductName: "Salmon", Quantity: qty(12)},
		),
	})

	rec := Reconcile(context.Background(), agg, map[string]StockEntry{})

	if len(rec.Deficits) != 3 {
		t.Fatalf("len(Deficits) = %d, want 3", len(rec.Deficits))
	}

	// Largest deficit first, ties broken by name ascending.
	want := []string{"Salmon", "Anchovy", "Tuna"}
	for i, name := range want {
		if rec.Deficits[i].ProductName != name {
			t.Errorf("Deficits[%d] = %q, want %q", i, rec.Deficits[i].ProductName, name)
		}
	}
}
