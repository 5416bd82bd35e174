package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRegionalMultiplier(t *testing.T) {
	tests := []struct {
		postalCode string
		want       float64
	}{
		{"29615", 0.99},
		{"29301", 0.96},
		{"00000", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		if got := RegionalMultiplier(tt.postalCode); got != tt.want {
			t.Errorf("RegionalMultiplier(%q) = %v, want %v", tt.postalCode, got, tt.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"10.00", "10", false},
		{"$12.49", "12.49", false},
		{"$1,234.50", "1234.5", false},
		{" 8.99 ", "8.99", false},
		{"", "", true},
		{"free", "", true},
		{"-4.20", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q) expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestComputePriceIbuprofen(t *testing.T) {
	// 10.00 base, 100mg dosage band 1.3, 30 tablets band 1.0, Greenville
	// ZIP 29615 multiplier 0.99 gives 12.87 exactly.
	engine := NewEngine()

	quote := engine.ComputePrice(decimal.RequireFromString("10.00"), "100mg", "30", "29615", "ibuprofen")

	if quote.DosageMultiplier != 1.3 {
		t.Errorf("DosageMultiplier = %v, want 1.3", quote.DosageMultiplier)
	}
	if quote.QuantityMultiplier != 1.0 {
		t.Errorf("QuantityMultiplier = %v, want 1.0", quote.QuantityMultiplier)
	}
	if quote.RegionalMultiplier != 0.99 {
		t.Errorf("RegionalMultiplier = %v, want 0.99", quote.RegionalMultiplier)
	}
	if quote.DisplayPrice != "12.87" {
		t.Errorf("DisplayPrice = %q, want 12.87", quote.DisplayPrice)
	}
}

func TestComputePriceNeutralRegion(t *testing.T) {
	engine := NewEngine()

	quote := engine.ComputePrice(decimal.RequireFromString("10.00"), "100mg", "30", "00000", "ibuprofen")

	if quote.DisplayPrice != "13.00" {
		t.Errorf("DisplayPrice = %q, want 13.00", quote.DisplayPrice)
	}
}

func TestComputePriceUsesProductForm(t *testing.T) {
	// Hydrocortisone is a cream, so "30g" bands at 1.7 instead of the
	// tablet table.
	engine := NewEngine()

	quote := engine.ComputePrice(decimal.RequireFromString("8.00"), "1%", "30g", "", "hydrocortisone")

	if quote.QuantityMultiplier != 1.7 {
		t.Errorf("QuantityMultiplier = %v, want 1.7", quote.QuantityMultiplier)
	}
}
