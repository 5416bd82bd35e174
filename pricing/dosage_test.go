package pricing

import "testing"

func TestDosageMultiplierBands(t *testing.T) {
	tests := []struct {
		dosage string
		want   float64
	}{
		{"10mg", 0.8},
		{"11mg", 1.0},
		{"25mg", 1.0},
		{"26mg", 1.3},
		{"100mg", 1.3},
		{"101mg", 1.6},
		{"500mg", 1.6},
		{"501mg", 2.0},
		{"1000mg", 2.0},
	}

	for _, tt := range tests {
		if got := DosageMultiplier(tt.dosage); got != tt.want {
			t.Errorf("DosageMultiplier(%q) = %v, want %v", tt.dosage, got, tt.want)
		}
	}
}

func TestDosageMultiplierNonNumeric(t *testing.T) {
	// Strength strings without a leading number parse to zero and land in
	// the lowest band.
	for _, dosage := range []string{"1%", "", "one tablet", "mg200"} {
		if got := DosageMultiplier(dosage); got != 0.8 {
			t.Errorf("DosageMultiplier(%q) = %v, want 0.8", dosage, got)
		}
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"200mg", 200},
		{"120ml", 120},
		{"15g", 15},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseLeadingInt(tt.in); got != tt.want {
			t.Errorf("parseLeadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
