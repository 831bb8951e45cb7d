package types

import (
	"encoding/json"
	"testing"
)

func TestQuantityString(t *testing.T) {
	tests := []struct {
		in   Quantity
		want string
	}{
		{NewQuantityFromFloat64(12.5), "12.5000"},
		{NewQuantityFromFloat64(0.35), "0.3500"},
		{NewQuantityFromUnits(8), "8.0000"},
		{0, "0.0000"},
		{NewQuantityFromFloat64(-3.5), "-3.5000"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuantityUnitsTruncates(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{8.0, 8},
		{8.9999, 8},
		{0.5, 0},
		{10.0001, 10},
	}

	for _, tt := range tests {
		if got := NewQuantityFromFloat64(tt.in).Units(); got != tt.want {
			t.Errorf("Units(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuantityUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Quantity
	}{
		{`12.5`, NewQuantityFromFloat64(12.5)},
		{`"12.5"`, NewQuantityFromFloat64(12.5)},
		{`3`, NewQuantityFromUnits(3)},
		{`0.3500`, NewQuantityFromFloat64(0.35)},
		{`-1.25`, NewQuantityFromFloat64(-1.25)},
		// Extra fractional digits truncate at scale 4.
		{`1.23456`, NewQuantityFromInt64Scaled(12345)},
		{`null`, 0},
	}

	for _, tt := range tests {
		var q Quantity
		if err := json.Unmarshal([]byte(tt.in), &q); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if q != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, q, tt.want)
		}
	}
}

func TestQuantityMarshalRoundTrip(t *testing.T) {
	in := NewQuantityFromFloat64(7.25)

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "7.2500" {
		t.Errorf("Marshal = %s", data)
	}

	var out Quantity
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %d, want %d", out, in)
	}
}

func TestQuantityUnmarshalRejectsGarbage(t *testing.T) {
	for _, in := range []string{`""`, `"abc"`, `"1.2.3"`} {
		var q Quantity
		if err := json.Unmarshal([]byte(in), &q); err == nil {
			t.Errorf("Unmarshal(%s) should fail", in)
		}
	}
}
