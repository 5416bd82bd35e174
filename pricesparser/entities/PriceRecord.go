package entities

// MedicationPriceRecord is one row of the scraped price feed. Fields are kept
// as raw strings at load time; price parsing is deferred to lookup so a bad
// row never poisons a whole partition.
type MedicationPriceRecord struct {
	Name           string `json:"name"`
	Pharmacy       string `json:"pharmacy"`
	Price          string `json:"price"`
	NameNormalized string `json:"-"` // Pre-computed: TrimSpace() + ToLower()
}
