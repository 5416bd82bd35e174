package catalog

// quantityOptions maps each product form to the discrete quantity choices
// the search form offers. The pricing engine's quantity banding tables are
// aligned with these values, so the mapping must not drift.
var quantityOptions = map[ProductForm][]string{
	FormTablets:         {"30", "60", "90", "180"},
	FormCapsules:        {"30", "60", "90", "180"},
	FormSoftgel:         {"30", "60", "90", "120"},
	FormCream:           {"15g", "30g", "45g", "60g"},
	FormOintment:        {"15g", "30g", "45g", "60g"},
	FormLiquid:          {"120ml", "240ml", "480ml"},
	FormPowder:          {"1", "2", "3"},
	FormInhaler:         {"1", "2", "3"},
	FormNasalSpray:      {"1", "2", "3"},
	FormPatch:           {"7", "14", "28"},
	FormGum:             {"20", "40", "100", "200"},
	FormLozenge:         {"24", "72", "144"},
	FormSuppository:     {"8", "12", "24"},
	FormSingle:          {"1"},
	FormTopicalSolution: {"60ml", "1", "3"},
}

// QuantityOptionsFor returns the valid quantity choices for a product form.
// Unknown forms fall back to the tablet options.
func QuantityOptionsFor(form ProductForm) []string {
	opts, ok := quantityOptions[form]
	if !ok {
		opts = quantityOptions[FormTablets]
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}
