package units

import (
	"testing"

	"maree/internal/core/types"
)

func TestIsByWeight(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"salmon", true},
		{"Salmon", true},
		{"  Cod Fillet  ", true},
		{"mussels", true},
		{"sea bream", false},
		{"lobster", false},
		{"oyster", false},
		{"unknown exotic fish", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsByWeight(tt.name); got != tt.want {
			t.Errorf("IsByWeight(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseSizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want SizeTag
	}{
		{"S", SizeSmall},
		{"small", SizeSmall},
		{"L", SizeLarge},
		{" large ", SizeLarge},
		{"M", SizeMedium},
		{"medium", SizeMedium},
		{"", SizeMedium},
		{"XXL", SizeMedium},
	}

	for _, tt := range tests {
		if got := ParseSizeTag(tt.in); got != tt.want {
			t.Errorf("ParseSizeTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAverageUnitWeightKg(t *testing.T) {
	tests := []struct {
		name string
		size SizeTag
		want float64
	}{
		{"sea bream", SizeSmall, 0.35},
		{"sea bream", SizeMedium, 0.5},
		{"sea bream", SizeLarge, 0.7},
		{"Sea Bass", SizeLarge, 0.9},
		{"trout", SizeSmall, 0.25},
		// Size tag ignored for flat-average products.
		{"lobster", SizeLarge, 0.6},
		{"oyster", SizeMedium, 0.09},
		// Unknown products fall back to the default.
		{"mystery fish", SizeMedium, 1.0},
	}

	for _, tt := range tests {
		want := types.NewQuantityFromFloat64(tt.want)
		if got := AverageUnitWeightKg(tt.name, tt.size); got != want {
			t.Errorf("AverageUnitWeightKg(%q, %v) = %v, want %v", tt.name, tt.size, got, want)
		}
	}
}

func TestHasKnownAverageWeight(t *testing.T) {
	if !HasKnownAverageWeight("sea bream") {
		t.Error("sea bream should have a known average weight")
	}
	if !HasKnownAverageWeight("Scallop") {
		t.Error("scallop should have a known average weight")
	}
	if HasKnownAverageWeight("mystery fish") {
		t.Error("mystery fish should not have a known average weight")
	}
}

func TestUnitsFromWeight(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		product  string
		size     SizeTag
		want     int64
	}{
		// 4 kg of sea bream at 0.5 kg average = 8 whole fish.
		{"exact division", 4.0, "sea bream", SizeMedium, 8},
		// 7 kg at 0.7 kg (large) = 10 whole fish.
		{"large bucket", 7.0, "sea bream", SizeLarge, 10},
		// Partial units always round down.
		{"rounds down", 1.0, "sea bream", SizeLarge, 1},
		{"just under two", 0.69, "sea bream", SizeSmall, 1},
		// Oysters: 5.4 kg at 0.09 kg = 60.
		{"small average", 5.4, "oyster", SizeMedium, 60},
		// Unknown product uses the 1.0 kg default.
		{"default average", 3.5, "mystery fish", SizeMedium, 3},
		{"zero weight", 0, "lobster", SizeMedium, 0},
		{"negative weight", -2.0, "lobster", SizeMedium, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitsFromWeight(types.NewQuantityFromFloat64(tt.weightKg), tt.product, tt.size)
			if got != tt.want {
				t.Errorf("UnitsFromWeight(%v, %q, %v) = %d, want %d",
					tt.weightKg, tt.product, tt.size, got, tt.want)
			}
		})
	}
}
