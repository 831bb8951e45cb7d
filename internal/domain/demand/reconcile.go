package demand

import (
	"context"
	"sort"
	"strings"

	"maree/internal/core/types"
	"maree/internal/domain/units"
	"maree/pkg/logger"
)

// Unit is the native unit a product's demand and deficit are expressed in.
type Unit string

const (
	UnitWeight Unit = "kg"
	UnitCount  Unit = "pcs"
)

// StockEntry is one product's live stock, always stored in weight terms.
type StockEntry struct {
	ProductName       string
	AvailableWeightKg types.Quantity
	Active            bool
}

// DeficitEntry reports unmet demand for one product, in its native unit.
type DeficitEntry struct {
	ProductName  string         `json:"productName"`
	Unit         Unit           `json:"unit"`
	TotalDemand  types.Quantity `json:"totalDemand"`
	CurrentStock types.Quantity `json:"currentStock"`
	Deficit      types.Quantity `json:"deficit"`
}

// SufficientEntry records a demanded product whose stock covers demand.
// Tracked for report completeness, never silently dropped.
type SufficientEntry struct {
	ProductName  string         `json:"productName"`
	Unit         Unit           `json:"unit"`
	TotalDemand  types.Quantity `json:"totalDemand"`
	CurrentStock types.Quantity `json:"currentStock"`
}

// Reconciliation is the outcome of comparing aggregated demand against
// the stock snapshot.
type Reconciliation struct {
	// Deficits lists products with unmet demand, sorted by descending
	// deficit, ties broken by product name ascending.
	Deficits []DeficitEntry

	// Sufficient lists demanded products fully covered by stock.
	Sufficient []SufficientEntry
}

// Reconcile compares aggregated demand against the stock snapshot and
// computes per-product deficits in each product's native unit.
//
// Stock is keyed by lowercased product name. A demanded product missing
// from the snapshot counts as zero stock: absent data must not suppress
// a purchasing signal. Inactive products are excluded entirely; they
// cannot be restocked through normal channels.
func Reconcile(ctx context.Context, agg Aggregated, stock map[string]StockEntry) Reconciliation {
	var rec Reconciliation

	for key, pd := range agg.ByProduct {
		entry, found := stock[key]
		if found && !entry.Active {
			continue
		}

		var availableKg types.Quantity
		if found {
			availableKg = entry.AvailableWeightKg
		}

		unit := UnitCount
		var currentStock types.Quantity
		if units.IsByWeight(pd.ProductName) {
			// Weight-sold: stock is already native, full precision kept.
			unit = UnitWeight
			currentStock = availableKg
		} else {
			// Piece-sold: convert stored weight to whole units with the
			// same average-weight rule used at order placement. Rounding
			// is always down; partial fish cannot be sold.
			size := units.ParseSizeTag(pd.SizeTag)
			currentStock = types.NewQuantityFromUnits(
				units.UnitsFromWeight(availableKg, pd.ProductName, size),
			)
			if !units.HasKnownAverageWeight(pd.ProductName) {
				logger.Warn(ctx, "no average-weight rule for product, using default",
					"product", pd.ProductName,
					"default_kg", units.DefaultAverageWeightKg.String(),
				)
			}
		}

		deficit := pd.Total - currentStock
		if deficit > 0 {
			rec.Deficits = append(rec.Deficits, DeficitEntry{
				ProductName:  pd.ProductName,
				Unit:         unit,
				TotalDemand:  pd.Total,
				CurrentStock: currentStock,
				Deficit:      deficit,
			})
		} else {
			rec.Sufficient = append(rec.Sufficient, SufficientEntry{
				ProductName:  pd.ProductName,
				Unit:         unit,
				TotalDemand:  pd.Total,
				CurrentStock: currentStock,
			})
		}
	}

	sort.Slice(rec.Deficits, func(i, j int) bool {
		if rec.Deficits[i].Deficit != rec.Deficits[j].Deficit {
			return rec.Deficits[i].Deficit > rec.Deficits[j].Deficit
		}
		return compareNames(rec.Deficits[i].ProductName, rec.Deficits[j].ProductName)
	})
	sort.Slice(rec.Sufficient, func(i, j int) bool {
		return compareNames(rec.Sufficient[i].ProductName, rec.Sufficient[j].ProductName)
	})

	return rec
}

func compareNames(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
