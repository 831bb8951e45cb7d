package stock

import (
	"context"
	"testing"

	"maree/internal/core/types"
	"maree/internal/domain/demand"
)

type stubRepo struct {
	Repository
	balances []Balance
}

func (r *stubRepo) GetBalancesByNames(ctx context.Context, productNames []string) ([]Balance, error) {
	return r.balances, nil
}

func TestSnapshotForKeepsInactiveRows(t *testing.T) {
	repo := &stubRepo{balances: []Balance{
		{ProductName: "Salmon", AvailableWeightKg: types.NewQuantityFromFloat64(9), Active: true},
		{ProductName: "Cod", AvailableWeightKg: types.NewQuantityFromFloat64(5), Active: false},
	}}
	svc := NewService(repo)

	snapshot, err := svc.SnapshotFor(context.Background(), []string{"Salmon", "Cod"})
	if err != nil {
		t.Fatalf("SnapshotFor: %v", err)
	}

	entry, ok := snapshot["cod"]
	if !ok {
		t.Fatal("inactive product missing from snapshot; reconciliation would treat it as zero stock")
	}
	if entry.Active {
		t.Error("cod must carry active=false")
	}
	if !snapshot["salmon"].Active {
		t.Error("salmon must carry active=true")
	}
}

func TestSnapshotForInactiveProductNotReportedAsDeficit(t *testing.T) {
	repo := &stubRepo{balances: []Balance{
		{ProductName: "Cod", AvailableWeightKg: types.NewQuantityFromFloat64(1), Active: false},
	}}
	svc := NewService(repo)

	ctx := context.Background()
	snapshot, err := svc.SnapshotFor(ctx, []string{"Cod"})
	if err != nil {
		t.Fatalf("SnapshotFor: %v", err)
	}

	agg := demand.Aggregated{
		ByProduct: map[string]demand.ProductDemand{
			"cod": {ProductName: "Cod", Total: types.NewQuantityFromFloat64(10)},
		},
		OrderCount: 1,
	}

	rec := demand.Reconcile(ctx, agg, snapshot)
	for _, d := range rec.Deficits {
		if d.ProductName == "Cod" {
			t.Errorf("inactive product must be excluded, got deficit %s", d.Deficit)
		}
	}
	for _, s := range rec.Sufficient {
		if s.ProductName == "Cod" {
			t.Error("inactive product must not be listed as sufficient either")
		}
	}
}
