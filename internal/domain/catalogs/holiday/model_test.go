package holiday

import (
	"context"
	"testing"
	"time"
)

func TestHolidayValidate(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)

	valid := New("Christmas", start, end)
	if err := valid.Validate(ctx); err != nil {
		t.Errorf("valid holiday rejected: %v", err)
	}

	// Single-day windows are allowed.
	oneDay := New("New Year's Eve", start, start)
	if err := oneDay.Validate(ctx); err != nil {
		t.Errorf("single-day holiday rejected: %v", err)
	}

	blank := New("  ", start, end)
	if err := blank.Validate(ctx); err == nil {
		t.Error("blank name should fail validation")
	}

	inverted := New("Christmas", end, start)
	if err := inverted.Validate(ctx); err == nil {
		t.Error("end before start should fail validation")
	}

	noDates := New("Christmas", time.Time{}, time.Time{})
	if err := noDates.Validate(ctx); err == nil {
		t.Error("zero dates should fail validation")
	}
}
