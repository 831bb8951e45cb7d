// Package units classifies catalog products as weight-sold or piece-sold
// and maps piece-sold products to average unit weights. Classification is
// a fixed, name-keyed rule table: new products are added by extending the
// tables, not by changing code paths.
package units

import (
	"strings"

	"maree/internal/core/types"
)

// SizeTag selects an average-weight bucket for size-graded fish.
type SizeTag string

const (
	SizeSmall  SizeTag = "S"
	SizeMedium SizeTag = "M"
	SizeLarge  SizeTag = "L"
)

// ParseSizeTag normalizes a free-form size string to a SizeTag.
// Unrecognized values map to SizeMedium, the bucket fallback.
func ParseSizeTag(s string) SizeTag {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SMALL":
		return SizeSmall
	case "L", "LARGE":
		return SizeLarge
	default:
		return SizeMedium
	}
}

// DefaultAverageWeightKg is used for piece-sold products without an
// explicit average-weight rule.
var DefaultAverageWeightKg = types.NewQuantityFromFloat64(1.0)

// byWeight lists products sold by weight. Every product not listed here
// is piece-sold.
var byWeight = map[string]bool{
	"salmon":        true,
	"salmon fillet": true,
	"cod":           true,
	"cod fillet":    true,
	"tuna":          true,
	"swordfish":     true,
	"monkfish":      true,
	"octopus":       true,
	"squid":         true,
	"cuttlefish":    true,
	"shrimp":        true,
	"mussels":       true,
	"clams":         true,
	"anchovy":       true,
	"sardines":      true,
	"whitebait":     true,
}

// sizedAverages holds average unit weights in kg for size-graded fish.
// Missing buckets fall back to SizeMedium.
var sizedAverages = map[string]map[SizeTag]types.Quantity{
	"sea bream": {
		SizeSmall:  types.NewQuantityFromFloat64(0.35),
		SizeMedium: types.NewQuantityFromFloat64(0.5),
		SizeLarge:  types.NewQuantityFromFloat64(0.7),
	},
	"sea bass": {
		SizeSmall:  types.NewQuantityFromFloat64(0.4),
		SizeMedium: types.NewQuantityFromFloat64(0.6),
		SizeLarge:  types.NewQuantityFromFloat64(0.9),
	},
	"trout": {
		SizeSmall:  types.NewQuantityFromFloat64(0.25),
		SizeMedium: types.NewQuantityFromFloat64(0.35),
		SizeLarge:  types.NewQuantityFromFloat64(0.5),
	},
}

// flatAverages holds average unit weights in kg for piece-sold products
// without size grading.
var flatAverages = map[string]types.Quantity{
	"lobster":    types.NewQuantityFromFloat64(0.6),
	"crab":       types.NewQuantityFromFloat64(0.4),
	"sole":       types.NewQuantityFromFloat64(0.3),
	"mackerel":   types.NewQuantityFromFloat64(0.3),
	"red mullet": types.NewQuantityFromFloat64(0.15),
	"john dory":  types.NewQuantityFromFloat64(0.8),
	"oyster":     types.NewQuantityFromFloat64(0.09),
	"scallop":    types.NewQuantityFromFloat64(0.06),
}

func normalize(productName string) string {
	return strings.ToLower(strings.TrimSpace(productName))
}

// IsByWeight reports whether a product is sold by weight.
// Unknown products classify as piece-sold; the catalog is externally
// managed and may contain products without rules.
func IsByWeight(productName string) bool {
	return byWeight[normalize(productName)]
}

// HasKnownAverageWeight reports whether an explicit average-weight rule
// exists for the product, beyond the generic default.
func HasKnownAverageWeight(productName string) bool {
	name := normalize(productName)
	if _, ok := sizedAverages[name]; ok {
		return true
	}
	_, ok := flatAverages[name]
	return ok
}

// AverageUnitWeightKg returns the average unit weight for a piece-sold
// product. For size-graded fish the size tag selects the bucket, with
// SizeMedium as fallback. Products without a rule return
// DefaultAverageWeightKg.
func AverageUnitWeightKg(productName string, size SizeTag) types.Quantity {
	name := normalize(productName)

	if buckets, ok := sizedAverages[name]; ok {
		if w, ok := buckets[size]; ok {
			return w
		}
		return buckets[SizeMedium]
	}

	if w, ok := flatAverages[name]; ok {
		return w
	}

	return DefaultAverageWeightKg
}

// UnitsFromWeight converts an available weight into a whole unit count
// using the product's average unit weight. Partial units cannot be sold,
// so the result always rounds down, clamped to zero.
func UnitsFromWeight(availableWeightKg types.Quantity, productName string, size SizeTag) int64 {
	avg := AverageUnitWeightKg(productName, size)
	if !avg.IsPositive() {
		return 0
	}
	if !availableWeightKg.IsPositive() {
		return 0
	}
	return availableWeightKg.Int64Scaled() / avg.Int64Scaled()
}
