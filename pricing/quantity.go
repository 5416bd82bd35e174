package pricing

import (
	"strings"

	"github.com/kcbailey111/AffordRX/catalog"
)

// quantityBander computes the quantity multiplier for one product form.
// The quantity argument is the trimmed, lowercased user selection.
type quantityBander func(quantity string) float64

// parseMagnitude reads the numeric magnitude of a quantity such as "30",
// "45g" or "240ml". A value with no leading digits yields (0, false); every
// banding function treats that as magnitude-band 1.0 so that a junk
// quantity never inflates a price.
func parseMagnitude(quantity string) (float64, bool) {
	n := parseLeadingInt(quantity)
	if n == 0 && (quantity == "" || quantity[0] < '0' || quantity[0] > '9') {
		return 0, false
	}
	return float64(n), true
}

func tabletBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 30:
		return 1.0
	case q <= 60:
		return 1.85
	case q <= 90:
		return 2.6
	default:
		return 4.8
	}
}

func softgelBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 30:
		return 1.0
	case q <= 60:
		return 1.85
	case q <= 90:
		return 2.6
	default:
		return 3.4
	}
}

func creamBander(quantity string) float64 {
	switch quantity {
	case "15g":
		return 1.0
	case "30g":
		return 1.7
	case "45g":
		return 2.3
	case "60g":
		return 2.9
	}
	q, ok := parseMagnitude(quantity)
	if !ok || q == 0 {
		return 1.0
	}
	return q / 15
}

func liquidBander(quantity string) float64 {
	switch quantity {
	case "120ml":
		return 1.0
	case "240ml":
		return 1.8
	case "480ml":
		return 3.2
	}
	q, ok := parseMagnitude(quantity)
	if !ok || q == 0 {
		return 1.0
	}
	return q / 120
}

func powderBander(quantity string) float64 {
	q, ok := parseMagnitude(quantity)
	if !ok {
		return 1.0
	}
	m := q * 0.95
	if m < 1.0 {
		return 1.0
	}
	return m
}

func inhalerBander(quantity string) float64 {
	q, ok := parseMagnitude(quantity)
	if !ok {
		return 1.0
	}
	switch q {
	case 1:
		return 1.0
	case 2:
		return 1.9
	default:
		return q * 0.93
	}
}

func nasalSprayBander(quantity string) float64 {
	q, ok := parseMagnitude(quantity)
	if !ok {
		return 1.0
	}
	switch q {
	case 1:
		return 1.0
	case 2:
		return 1.85
	default:
		return q * 0.9
	}
}

func patchBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 7:
		return 1.0
	case q <= 14:
		return 1.9
	case q <= 28:
		return 3.5
	default:
		return q / 7 * 0.9
	}
}

func gumBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 20:
		return 1.0
	case q <= 40:
		return 1.8
	case q <= 100:
		return 4.0
	default:
		return 7.5
	}
}

func lozengeBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 24:
		return 1.0
	case q <= 72:
		return 2.7
	default:
		return 3.8
	}
}

func suppositoryBander(quantity string) float64 {
	q, _ := parseMagnitude(quantity)
	switch {
	case q <= 8:
		return 1.0
	case q <= 12:
		return 1.4
	default:
		return 4.5
	}
}

func singleBander(string) float64 { return 1.0 }

func topicalSolutionBander(quantity string) float64 {
	if quantity == "60ml" {
		return 1.0
	}
	q, ok := parseMagnitude(quantity)
	if !ok {
		return 1.0
	}
	switch q {
	case 1:
		return 1.0
	case 3:
		return 2.7
	default:
		return q * 0.9
	}
}

// quantityBanders maps each product form to its banding function. Forms
// missing from the map use the tablet banding.
var quantityBanders = map[catalog.ProductForm]quantityBander{
	catalog.FormTablets:         tabletBander,
	catalog.FormCapsules:        tabletBander,
	catalog.FormSoftgel:         softgelBander,
	catalog.FormCream:           creamBander,
	catalog.FormOintment:        creamBander,
	catalog.FormLiquid:          liquidBander,
	catalog.FormPowder:          powderBander,
	catalog.FormInhaler:         inhalerBander,
	catalog.FormNasalSpray:      nasalSprayBander,
	catalog.FormPatch:           patchBander,
	catalog.FormGum:             gumBander,
	catalog.FormLozenge:         lozengeBander,
	catalog.FormSuppository:     suppositoryBander,
	catalog.FormSingle:          singleBander,
	catalog.FormTopicalSolution: topicalSolutionBander,
}

// QuantityMultiplier applies the banding table of the given product form to
// a raw quantity selection.
func QuantityMultiplier(form catalog.ProductForm, quantity string) float64 {
	bander, ok := quantityBanders[form]
	if !ok {
		bander = tabletBander
	}
	return bander(strings.ToLower(strings.TrimSpace(quantity)))
}
