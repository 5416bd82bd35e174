package search

import (
	"github.com/shopspring/decimal"

	"github.com/kcbailey111/AffordRX/catalog"
)

// Marker tiers drive how a result is highlighted. The cheapest result is
// "best", the next two get their own tiers, everything else is "other".
const (
	TierBest   = "best"
	TierSecond = "second"
	TierThird  = "third"
	TierOther  = "other"
)

type RankedResult struct {
	Rank               int                      `json:"rank"`
	Pharmacy           catalog.PharmacyLocation `json:"pharmacy"`
	Price              string                   `json:"price"`
	DeltaOverBest      string                   `json:"deltaOverBest"`
	DosageMultiplier   float64                  `json:"dosageMultiplier"`
	QuantityMultiplier float64                  `json:"quantityMultiplier"`
	RegionalMultiplier float64                  `json:"regionalMultiplier"`
	MarkerTier         string                   `json:"markerTier"`
}

type Response struct {
	Medication     string         `json:"medication"`
	Dosage         string         `json:"dosage"`
	Quantity       string         `json:"quantity"`
	BestPrice      string         `json:"bestPrice"`
	WorstPrice     string         `json:"worstPrice"`
	AveragePrice   string         `json:"averagePrice"`
	SavingsPercent int64          `json:"savingsPercent"`
	PharmacyCount  int            `json:"pharmacyCount"`
	PartialData    bool           `json:"partialData,omitempty"`
	Results        []RankedResult `json:"results"`
}

// SavingsPercent reports how much cheaper the minimum price is than the
// maximum, as a whole percentage. Fewer than two prices, or a zero maximum,
// yield zero.
func SavingsPercent(prices []decimal.Decimal) int64 {
	if len(prices) < 2 {
		return 0
	}
	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p.LessThan(min) {
			min = p
		}
		if p.GreaterThan(max) {
			max = p
		}
	}
	if max.IsZero() {
		return 0
	}
	hundred := decimal.NewFromInt(100)
	return max.Sub(min).Div(max).Mul(hundred).Round(0).IntPart()
}

func markerTier(rank int) string {
	switch rank {
	case 1:
		return TierBest
	case 2:
		return TierSecond
	case 3:
		return TierThird
	default:
		return TierOther
	}
}

// buildResponse assumes results are already sorted cheapest first.
func buildResponse(req Request, results []priced) *Response {
	best := results[0].quote.FinalPrice
	worst := results[len(results)-1].quote.FinalPrice

	sum := decimal.Zero
	prices := make([]decimal.Decimal, 0, len(results))
	for _, r := range results {
		prices = append(prices, r.quote.FinalPrice)
		sum = sum.Add(r.quote.FinalPrice)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(results))))

	ranked := make([]RankedResult, 0, len(results))
	for i, r := range results {
		rank := i + 1
		ranked = append(ranked, RankedResult{
			Rank:               rank,
			Pharmacy:           r.pharmacy,
			Price:              r.quote.DisplayPrice,
			DeltaOverBest:      r.quote.FinalPrice.Sub(best).Round(2).StringFixed(2),
			DosageMultiplier:   r.quote.DosageMultiplier,
			QuantityMultiplier: r.quote.QuantityMultiplier,
			RegionalMultiplier: r.quote.RegionalMultiplier,
			MarkerTier:         markerTier(rank),
		})
	}

	return &Response{
		Medication:     req.Medication,
		Dosage:         req.Dosage,
		Quantity:       req.Quantity,
		BestPrice:      best.Round(2).StringFixed(2),
		WorstPrice:     worst.Round(2).StringFixed(2),
		AveragePrice:   avg.Round(2).StringFixed(2),
		SavingsPercent: SavingsPercent(prices),
		PharmacyCount:  len(ranked),
		Results:        ranked,
	}
}
