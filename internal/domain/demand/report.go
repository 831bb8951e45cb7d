package demand

import (
	"time"

	"maree/internal/core/id"
)

// Status is the tri-state outcome of a holiday reconciliation run.
// Downstream consumers (PDF, email, messaging) must branch on this value
// and never re-derive it from the entry lists.
type Status string

const (
	// StatusNoOrders - no qualifying orders in the holiday window.
	StatusNoOrders Status = "no_orders"

	// StatusSufficientStock - orders exist, every product is covered.
	StatusSufficientStock Status = "sufficient_stock"

	// StatusGenerated - at least one product has unmet demand.
	StatusGenerated Status = "report_generated"
)

// HolidayMeta identifies the holiday a report was generated for.
type HolidayMeta struct {
	ID        id.ID     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Report is the structured hand-off to document and notification
// generators. It is computed fresh on every request and never persisted
// by the engine itself.
type Report struct {
	Holiday     HolidayMeta       `json:"holiday"`
	Status      Status            `json:"status"`
	TotalOrders int               `json:"totalOrders"`
	OrderIDs    []id.ID           `json:"orderIds,omitempty"`
	Deficits    []DeficitEntry    `json:"deficits,omitempty"`
	Sufficient  []SufficientEntry `json:"sufficient,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// BuildReport classifies the run outcome and assembles the report.
func BuildReport(holiday HolidayMeta, agg Aggregated, rec Reconciliation) Report {
	report := Report{
		Holiday:     holiday,
		TotalOrders: agg.OrderCount,
		OrderIDs:    agg.OrderIDs,
		Deficits:    rec.Deficits,
		Sufficient:  rec.Sufficient,
		GeneratedAt: time.Now().UTC(),
	}

	switch {
	case agg.OrderCount == 0:
		report.Status = StatusNoOrders
	case len(rec.Deficits) == 0:
		report.Status = StatusSufficientStock
	default:
		report.Status = StatusGenerated
	}

	return report
}
