// Package validation provides input validation and feed quality reporting
// for the price-comparison service.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
	"github.com/shopspring/decimal"
)

// Pre-compiled patterns, built once at package initialization
var (
	// Search terms: letters, digits, spaces and safe punctuation
	searchTermRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+']+$`)

	// Dosage/quantity selections: short alphanumeric values with an
	// optional unit suffix or percent sign ("200mg", "120ml", "45g", "1%")
	selectionRegex = regexp.MustCompile(`^[a-zA-Z0-9\./%]+$`)

	// Dangerous substrings checked before the charset pattern;
	// strings.Contains is much cheaper than a combined regex
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "onload=", "onerror=",
		"eval(", "expression(", "url(", "@import",
		"' or ", "\" or ", "union select", "drop table", "--", "/*", "*/",
		"; ", "| ", "& ", "`", "$(", "${",
		"../", "..\\", "%2e%2e", "file://",
	}
)

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateSearchTerm validates a free-text medication name.
func (v *DataValidatorImpl) ValidateSearchTerm(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 2 {
		return fmt.Errorf("input too short: minimum 2 characters")
	}

	if len(input) > 60 {
		return fmt.Errorf("input too long: maximum 60 characters")
	}

	if len(strings.Fields(input)) > 6 {
		return fmt.Errorf("search query too complex: maximum 6 words allowed")
	}

	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !searchTermRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods and plus signs are allowed")
	}

	return nil
}

// ValidateSelection validates a dosage or quantity form selection.
func (v *DataValidatorImpl) ValidateSelection(field, input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	if len(trimmed) > 12 {
		return fmt.Errorf("%s too long: maximum 12 characters", field)
	}

	if !selectionRegex.MatchString(trimmed) {
		return fmt.Errorf("%s contains invalid characters", field)
	}

	return nil
}

// ReportDataQuality scans a loaded partition for feed issues: missing
// fields, unparsable or negative prices, and duplicate (name, pharmacy)
// pairs. Issues are reported, never fixed; lookup semantics stay exactly
// what the feed contains.
func (v *DataValidatorImpl) ReportDataQuality(records []entities.MedicationPriceRecord) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{
		TotalRecords:   len(records),
		DuplicatePairs: []string{},
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			report.MissingName++
		}
		if strings.TrimSpace(rec.Pharmacy) == "" {
			report.MissingPharmacy++
		}

		price := strings.TrimSpace(rec.Price)
		price = strings.TrimPrefix(price, "$")
		price = strings.ReplaceAll(price, ",", "")
		d, err := decimal.NewFromString(price)
		switch {
		case err != nil:
			report.UnparsablePrice++
		case d.IsNegative():
			report.NegativePrice++
		}

		pair := rec.NameNormalized + "|" + strings.ToLower(strings.TrimSpace(rec.Pharmacy))
		if seen[pair] {
			if len(report.DuplicatePairs) < 10 {
				report.DuplicatePairs = append(report.DuplicatePairs, pair)
			}
		}
		seen[pair] = true
	}

	return report
}
