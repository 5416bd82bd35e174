package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kcbailey111/AffordRX/catalog"
)

// ParsePrice converts a raw feed price such as "$1,234.50" into a decimal.
// The leading currency symbol and thousands separators are stripped. A
// negative or unparsable value is an error; the caller should skip the
// record rather than fail the search.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", raw)
	}
	return d, nil
}

// Quote is the breakdown of one computed price. FinalPrice keeps full
// precision for ranking; DisplayPrice is rounded to cents.
type Quote struct {
	BasePrice          decimal.Decimal
	DosageMultiplier   float64
	QuantityMultiplier float64
	RegionalMultiplier float64
	FinalPrice         decimal.Decimal
	DisplayPrice       string
}

// Engine combines the banding tables into final prices. It is stateless and
// safe for concurrent use.
type Engine struct{}

// NewEngine creates a pricing engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ComputePrice applies the dosage, quantity and regional multipliers to a
// base price. The product form is resolved from the drug's guidance entry,
// defaulting to tablets for drugs that only exist in the feed.
func (e *Engine) ComputePrice(basePrice decimal.Decimal, dosage, quantity, postalCode, drugName string) Quote {
	form := catalog.ProductFormFor(drugName)

	dm := DosageMultiplier(dosage)
	qm := QuantityMultiplier(form, quantity)
	rm := RegionalMultiplier(postalCode)

	final := basePrice.
		Mul(decimal.NewFromFloat(dm)).
		Mul(decimal.NewFromFloat(qm)).
		Mul(decimal.NewFromFloat(rm))

	return Quote{
		BasePrice:          basePrice,
		DosageMultiplier:   dm,
		QuantityMultiplier: qm,
		RegionalMultiplier: rm,
		FinalPrice:         final,
		DisplayPrice:       final.Round(2).StringFixed(2),
	}
}
