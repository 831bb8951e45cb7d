package demand

import (
	"testing"
	"time"
)

func TestDueWithinLookahead(t *testing.T) {
	today := time.Date(2025, 12, 17, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate time.Time
		lookahead int
		want      bool
	}{
		{"starts today", time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC), 7, true},
		{"starts tomorrow", time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC), 7, true},
		{"boundary day is inclusive", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), 7, true},
		{"one day past boundary", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), 7, false},
		{"started yesterday", time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC), 7, false},
		{"zero lookahead only today", time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC), 0, true},
		{"zero lookahead excludes tomorrow", time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC), 0, false},
		// Time of day never matters: a start late on the boundary day
		// still qualifies.
		{"boundary late in day", time.Date(2025, 12, 24, 23, 59, 0, 0, time.UTC), 7, true},
		{"today earlier clock time", time.Date(2025, 12, 17, 1, 0, 0, 0, time.UTC), 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueWithinLookahead(today, tt.startDate, tt.lookahead); got != tt.want {
				t.Errorf("DueWithinLookahead(%v, %v, %d) = %v, want %v",
					today, tt.startDate, tt.lookahead, got, tt.want)
			}
		})
	}
}

func TestDueWithinLookaheadIdempotent(t *testing.T) {
	today := time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	first := DueWithinLookahead(today, start, DefaultLookaheadDays)
	second := DueWithinLookahead(today, start, DefaultLookaheadDays)

	if first != second {
		t.Error("predicate must be stable across calls")
	}
	if !first {
		t.Error("start within window must be due")
	}
}
