package notify

import (
	"fmt"
	"strings"

	"maree/internal/domain/demand"
)

// RenderText renders a report as plain text for email and messaging
// channels. PDF rendering is a separate collaborator working from the
// same Report structure.
func RenderText(report demand.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Holiday demand report: %s\n", report.Holiday.Name)
	fmt.Fprintf(&b, "Window: %s - %s\n",
		report.Holiday.StartDate.Format("2006-01-02"),
		report.Holiday.EndDate.Format("2006-01-02"),
	)
	fmt.Fprintf(&b, "Orders in window: %d\n\n", report.TotalOrders)

	switch report.Status {
	case demand.StatusNoOrders:
		b.WriteString("No orders were placed for this holiday.\n")

	case demand.StatusSufficientStock:
		b.WriteString("Current stock covers all ordered products. Nothing to purchase.\n")

	case demand.StatusGenerated:
		b.WriteString("Products short of stock:\n")
		for _, d := range report.Deficits {
			fmt.Fprintf(&b, "  %-20s demand %s %s, in stock %s, SHORT %s %s\n",
				d.ProductName,
				d.TotalDemand.String(), d.Unit,
				d.CurrentStock.String(),
				d.Deficit.String(), d.Unit,
			)
		}
		if len(report.Sufficient) > 0 {
			b.WriteString("\nCovered by current stock:\n")
			for _, s := range report.Sufficient {
				fmt.Fprintf(&b, "  %-20s demand %s %s, in stock %s\n",
					s.ProductName,
					s.TotalDemand.String(), s.Unit,
					s.CurrentStock.String(),
				)
			}
		}
	}

	fmt.Fprintf(&b, "\nGenerated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}
