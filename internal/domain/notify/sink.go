// Package notify runs the holiday reporting pipeline: it scans the
// holiday calendar with the scheduling trigger, computes each due
// holiday's deficit report and hands the report to delivery sinks
// (email, messaging, archive). Delivery is best-effort; the computed
// report is the source of truth whether or not it could be sent.
package notify

import (
	"context"

	"maree/internal/domain/demand"
)

// Sink receives finished reports for rendering and delivery.
// Implementations must not mutate the report.
type Sink interface {
	// Name identifies the delivery channel in logs and run results.
	Name() string

	// Deliver renders and sends one report. Errors are reported to the
	// caller but never abort other holidays' runs.
	Deliver(ctx context.Context, report demand.Report) error
}
