package order

import (
	"context"
	"testing"
	"time"

	"maree/internal/core/types"
)

func testDeliveryDate() time.Time {
	return time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
}

func TestAddLineRecalculatesTotals(t *testing.T) {
	o := New("Marta Ferran", testDeliveryDate())

	o.AddLine("Salmon", types.NewQuantityFromFloat64(2.5), false, "", types.MustMoney("24.90"))
	o.AddLine("Sea Bream", types.NewQuantityFromFloat64(4), true, "L", types.MustMoney("18.00"))

	if len(o.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(o.Lines))
	}

	if o.Lines[0].LineNo != 1 || o.Lines[1].LineNo != 2 {
		t.Error("line numbers must be sequential")
	}

	// 2.5 * 24.90 + 4 * 18.00 = 62.25 + 72.00 = 134.25
	want := types.MustMoney("134.25")
	if !o.TotalAmount.Equal(want) {
		t.Errorf("total = %s, want %s", o.TotalAmount, want)
	}
}

func TestOrderValidate(t *testing.T) {
	ctx := context.Background()

	valid := New("Marta Ferran", testDeliveryDate())
	valid.AddLine("Salmon", types.NewQuantityFromFloat64(1), false, "", types.MustMoney("24.90"))
	if err := valid.Validate(ctx); err != nil {
		t.Errorf("valid order rejected: %v", err)
	}

	noCustomer := New("  ", testDeliveryDate())
	noCustomer.AddLine("Salmon", types.NewQuantityFromFloat64(1), false, "", types.MustMoney("24.90"))
	if err := noCustomer.Validate(ctx); err == nil {
		t.Error("blank customer name should fail validation")
	}

	noLines := New("Marta Ferran", testDeliveryDate())
	if err := noLines.Validate(ctx); err == nil {
		t.Error("order without lines should fail validation")
	}

	noDate := New("Marta Ferran", time.Time{})
	noDate.AddLine("Salmon", types.NewQuantityFromFloat64(1), false, "", types.MustMoney("24.90"))
	if err := noDate.Validate(ctx); err == nil {
		t.Error("zero delivery date should fail validation")
	}

	badLine := New("Marta Ferran", testDeliveryDate())
	badLine.Lines = []Line{{LineNo: 1, ProductName: "Salmon", Quantity: 0}}
	if err := badLine.Validate(ctx); err == nil {
		t.Error("non-positive quantity should fail validation")
	}
}
