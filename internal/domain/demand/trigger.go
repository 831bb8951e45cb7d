package demand

import (
	"time"
)

// DefaultLookaheadDays is how many days before a holiday's start its
// report becomes due.
const DefaultLookaheadDays = 7

// DueWithinLookahead reports whether a holiday starting at startDate
// requires report generation now: the start must fall within
// [today, today+lookaheadDays], both bounds inclusive, at date
// granularity. The predicate is idempotent and side-effect-free; the
// caller controls invocation cadence and any duplicate suppression.
func DueWithinLookahead(today, startDate time.Time, lookaheadDays int) bool {
	day := truncateToDay(today)
	start := truncateToDay(startDate)

	if start.Before(day) {
		return false
	}
	return !start.After(day.AddDate(0, 0, lookaheadDays))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
