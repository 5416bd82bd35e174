package pricing

// regionalMultipliers models local price variation by ZIP code. Any code
// not listed here uses the neutral multiplier 1.0.
var regionalMultipliers = map[string]float64{
	// Upstate South Carolina
	"29301": 0.96,
	"29302": 1.01,
	"29303": 0.97,
	"29306": 0.98,
	"29316": 1.02,
	"29601": 1.03,
	"29615": 0.99,
	// Midlands and coast
	"29201": 1.05,
	"29401": 1.08,
	"29577": 1.04,
	// Neighboring states
	"28202": 1.07,
	"28801": 1.03,
	"31401": 1.06,
}

// RegionalMultiplier returns the price scaling factor for a postal code.
// An empty or unlisted code yields 1.0.
func RegionalMultiplier(postalCode string) float64 {
	if m, ok := regionalMultipliers[postalCode]; ok {
		return m
	}
	return 1.0
}
