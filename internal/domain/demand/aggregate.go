// Package demand implements holiday demand aggregation and inventory
// reconciliation: it totals order-line quantities per product, compares
// them against the live stock snapshot and builds the deficit report that
// feeds the notification pipeline.
//
// Everything in this package is pure computation: deterministic, no I/O,
// no shared state between calls.
package demand

import (
	"sort"
	"strings"

	"maree/internal/core/id"
	"maree/internal/core/types"
	"maree/internal/domain/documents/order"
)

// ProductDemand is the accumulated demand for one product, in the
// product's native unit (kg or pieces).
type ProductDemand struct {
	ProductName string
	Total       types.Quantity

	// UnitBased carries the unit tag recorded on the order lines.
	UnitBased bool

	// SizeTag is the first non-empty size tag seen among contributing
	// lines; it selects the average-weight bucket at reconciliation.
	SizeTag string

	// LineCount is the number of contributing order lines.
	LineCount int
}

// Aggregated is the result of scanning one holiday window's orders.
type Aggregated struct {
	// ByProduct maps product name to accumulated demand. A product that
	// appears in no order line is absent, not present with zero.
	ByProduct map[string]ProductDemand

	// OrderCount is the number of qualifying orders scanned.
	OrderCount int

	// OrderIDs lists contributing orders for report traceability.
	OrderIDs []id.ID
}

// Aggregate flattens the given orders' line items and totals requested
// quantities per product name. Orders are expected to be pre-filtered to
// the holiday window. Quantities stay in the unit recorded on the line;
// no conversion happens here. Lines with a blank product name or a
// non-positive quantity are data-quality noise and are skipped.
func Aggregate(orders []*order.Order) Aggregated {
	agg := Aggregated{
		ByProduct: make(map[string]ProductDemand),
		OrderIDs:  make([]id.ID, 0, len(orders)),
	}

	for _, o := range orders {
		if o == nil {
			continue
		}
		agg.OrderCount++
		agg.OrderIDs = append(agg.OrderIDs, o.ID)

		for _, line := range o.Lines {
			name := strings.TrimSpace(line.ProductName)
			if name == "" || !line.Quantity.IsPositive() {
				continue
			}

			key := strings.ToLower(name)
			pd, ok := agg.ByProduct[key]
			if !ok {
				pd = ProductDemand{
					ProductName: name,
					UnitBased:   line.UnitBased,
				}
			}
			pd.Total += line.Quantity
			pd.LineCount++
			if pd.SizeTag == "" && line.SizeTag != "" {
				pd.SizeTag = line.SizeTag
			}
			agg.ByProduct[key] = pd
		}
	}

	return agg
}

// Products returns the demanded product names sorted ascending, for
// deterministic iteration and stock lookups.
func (a Aggregated) Products() []string {
	names := make([]string, 0, len(a.ByProduct))
	for _, pd := range a.ByProduct {
		names = append(names, pd.ProductName)
	}
	sort.Strings(names)
	return names
}
