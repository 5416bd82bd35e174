// Package pricing implements the deterministic price-adjustment rules: the
// dosage multiplier bands, the per-product-form quantity banding tables and
// the postal-code regional multipliers. All computation is pure; the only
// inputs are the immutable catalogs and the caller's arguments.
package pricing

import "strconv"

// parseLeadingInt reads the leading integer magnitude of a value such as
// "200mg" or "120ml". Input with no leading digits parses to 0.
func parseLeadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// DosageMultiplier bands the numeric dosage magnitude. Non-numeric input
// parses to 0 and lands in the lowest band.
func DosageMultiplier(dosage string) float64 {
	mg := parseLeadingInt(dosage)
	switch {
	case mg <= 10:
		return 0.8
	case mg <= 25:
		return 1.0
	case mg <= 100:
		return 1.3
	case mg <= 500:
		return 1.6
	default:
		return 2.0
	}
}
