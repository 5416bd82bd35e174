package pricing

import (
	"testing"

	"github.com/kcbailey111/AffordRX/catalog"
)

func TestQuantityMultiplierTablets(t *testing.T) {
	tests := []struct {
		quantity string
		want     float64
	}{
		{"30", 1.0},
		{"31", 1.85},
		{"60", 1.85},
		{"90", 2.6},
		{"91", 4.8},
		{"180", 4.8},
	}

	for _, tt := range tests {
		if got := QuantityMultiplier(catalog.FormTablets, tt.quantity); got != tt.want {
			t.Errorf("QuantityMultiplier(tablets, %q) = %v, want %v", tt.quantity, got, tt.want)
		}
	}
}

func TestQuantityMultiplierSoftgelCapsAt34(t *testing.T) {
	if got := QuantityMultiplier(catalog.FormSoftgel, "120"); got != 3.4 {
		t.Errorf("QuantityMultiplier(softgel, 120) = %v, want 3.4", got)
	}
}

func TestQuantityMultiplierCream(t *testing.T) {
	tests := []struct {
		quantity string
		want     float64
	}{
		{"15g", 1.0},
		{"30g", 1.7},
		{"45g", 2.3},
		{"60g", 2.9},
		{"90g", 6.0}, // falls through to magnitude / 15
	}

	for _, tt := range tests {
		if got := QuantityMultiplier(catalog.FormCream, tt.quantity); got != tt.want {
			t.Errorf("QuantityMultiplier(cream, %q) = %v, want %v", tt.quantity, got, tt.want)
		}
	}
}

func TestQuantityMultiplierLiquid(t *testing.T) {
	tests := []struct {
		quantity string
		want     float64
	}{
		{"120ml", 1.0},
		{"240ml", 1.8},
		{"480ml", 3.2},
		{"360ml", 3.0}, // falls through to magnitude / 120
	}

	for _, tt := range tests {
		if got := QuantityMultiplier(catalog.FormLiquid, tt.quantity); got != tt.want {
			t.Errorf("QuantityMultiplier(liquid, %q) = %v, want %v", tt.quantity, got, tt.want)
		}
	}
}

func TestQuantityMultiplierCountedForms(t *testing.T) {
	tests := []struct {
		form     catalog.ProductForm
		quantity string
		want     float64
	}{
		{catalog.FormInhaler, "1", 1.0},
		{catalog.FormInhaler, "2", 1.9},
		{catalog.FormInhaler, "3", 2.79},
		{catalog.FormNasalSpray, "1", 1.0},
		{catalog.FormNasalSpray, "2", 1.85},
		{catalog.FormPatch, "7", 1.0},
		{catalog.FormPatch, "14", 1.9},
		{catalog.FormPatch, "28", 3.5},
		{catalog.FormGum, "20", 1.0},
		{catalog.FormGum, "40", 1.8},
		{catalog.FormGum, "100", 4.0},
		{catalog.FormGum, "110", 7.5},
		{catalog.FormLozenge, "24", 1.0},
		{catalog.FormLozenge, "72", 2.7},
		{catalog.FormLozenge, "73", 3.8},
		{catalog.FormSuppository, "8", 1.0},
		{catalog.FormSuppository, "12", 1.4},
		{catalog.FormSuppository, "13", 4.5},
		{catalog.FormSingle, "1", 1.0},
		{catalog.FormTopicalSolution, "60ml", 1.0},
		{catalog.FormTopicalSolution, "3", 2.7},
	}

	for _, tt := range tests {
		got := QuantityMultiplier(tt.form, tt.quantity)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("QuantityMultiplier(%s, %q) = %v, want %v", tt.form, tt.quantity, got, tt.want)
		}
	}
}

func TestQuantityMultiplierPowderFloor(t *testing.T) {
	// One unit of powder would band below 1.0 without the floor.
	if got := QuantityMultiplier(catalog.FormPowder, "1"); got != 1.0 {
		t.Errorf("QuantityMultiplier(powder, 1) = %v, want 1.0", got)
	}
	got := QuantityMultiplier(catalog.FormPowder, "4")
	if diff := got - 3.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("QuantityMultiplier(powder, 4) = %v, want 3.8", got)
	}
}

func TestQuantityMultiplierNonNumeric(t *testing.T) {
	// A selection with no leading digits never inflates the price.
	forms := []catalog.ProductForm{
		catalog.FormTablets, catalog.FormCream, catalog.FormLiquid,
		catalog.FormPowder, catalog.FormInhaler, catalog.FormPatch,
		catalog.FormTopicalSolution,
	}
	for _, form := range forms {
		if got := QuantityMultiplier(form, "a bottle"); got != 1.0 {
			t.Errorf("QuantityMultiplier(%s, non-numeric) = %v, want 1.0", form, got)
		}
	}
}

func TestQuantityMultiplierUnknownFormUsesTablets(t *testing.T) {
	if got := QuantityMultiplier(catalog.ProductForm("elixir"), "60"); got != 1.85 {
		t.Errorf("QuantityMultiplier(unknown, 60) = %v, want 1.85", got)
	}
}
