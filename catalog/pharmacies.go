// Package catalog holds the static reference data of the application: the
// pharmacy registry, the dosage guidance catalog with its alias table, and
// the product-form quantity options. Everything here is built once at
// startup and never mutated.
package catalog

import "regexp"

// PharmacyLocation is a static registry entry used for both map placement
// and price lookup keys.
type PharmacyLocation struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	PostalCode string  `json:"postalCode,omitempty"` // derived from Address, empty if absent
}

var postalCodeRegex = regexp.MustCompile(`\d{5}`)

// ExtractPostalCode returns the first 5-digit run in the address, or "" if
// none exists. Older registry entries have no ZIP in the address at all.
func ExtractPostalCode(address string) string {
	return postalCodeRegex.FindString(address)
}

// pharmacyRegistry lists the locations served by the price feed. Coordinates
// and phone numbers come from the upstate South Carolina coverage area.
var pharmacyRegistry = []PharmacyLocation{
	{Name: "CVS Pharmacy", Latitude: 32.7767, Longitude: -80.1918, Address: "123 King St, Charleston, SC", Phone: "(843) 555-0123"},
	{Name: "Walgreens", Latitude: 34.0007, Longitude: -81.0348, Address: "456 Main St, Columbia, SC", Phone: "(803) 555-0124"},
	{Name: "Rite Aid", Latitude: 34.8526, Longitude: -82.3940, Address: "789 Wade Hampton Blvd, Greenville, SC", Phone: "(864) 555-0125"},
	{Name: "Publix Pharmacy", Latitude: 32.0835, Longitude: -81.0998, Address: "321 Abercorn St, Savannah, GA", Phone: "(912) 555-0126"},
	{Name: "Harris Teeter Pharmacy", Latitude: 35.2271, Longitude: -80.8431, Address: "654 South Blvd, Charlotte, NC", Phone: "(704) 555-0127"},
	{Name: "Food Lion Pharmacy", Latitude: 33.6891, Longitude: -78.8867, Address: "987 Ocean Blvd, Myrtle Beach, SC", Phone: "(843) 555-0128"},
	{Name: "Bi-Lo Pharmacy", Latitude: 34.5043, Longitude: -82.6501, Address: "147 Pelham Rd, Spartanburg, SC", Phone: "(864) 555-0129"},
	{Name: "Ingles Pharmacy", Latitude: 35.1983, Longitude: -82.2948, Address: "258 Hendersonville Rd, Asheville, NC", Phone: "(828) 555-0130"},
	{Name: "Walgreens Pharmacy 7822", Latitude: 34.966263, Longitude: -81.895416, Address: "1790 E Main St, Spartanburg, SC", Phone: "(864) 555-0131"},
	{Name: "Publix Pharmacy", Latitude: 34.967105, Longitude: -81.890509, Address: "1701 E Main St, Spartanburg, SC", Phone: "(864) 555-0132"},
	{Name: "Publix Pharmacy at the Market at Boiling Springs", Latitude: 35.06583095100721, Longitude: -81.99863749814074, Address: "4400 SC-9, Boiling Springs, SC 29316", Phone: "(864) 274-6225"},
	{Name: "Walgreens Pharmacy", Latitude: 35.05121984047732, Longitude: -81.98158116799644, Address: "3681 Boiling Springs Rd, Boiling Springs, SC 29316", Phone: "(864) 578-2414"},
	{Name: "Boiling Springs Pharmacy", Latitude: 35.02134010093637, Longitude: -81.95976493176535, Address: "2528 Boiling Springs Rd Suite D, Boiling Springs, SC 29316", Phone: "(864) 515-2600"},
	{Name: "CVS", Latitude: 35.020774675372714, Longitude: -81.9610189759189, Address: "1888 Boiling Springs Rd, Boiling Springs, SC 29316", Phone: "(864) 599-0920"},
	{Name: "U Save It Pharmacy - Peach Valley", Latitude: 35.03235883684897, Longitude: -81.89635042885386, Address: "2310 Chesnee Hwy, Spartanburg, SC 29303", Phone: "(864) 577-0087"},
	{Name: "Spartanburg Regional Pharmacy - Physician Center - Spartanburg", Latitude: 34.971346250376314, Longitude: -81.93936656157912, Address: "100 E Wood St #101, Spartanburg, SC 29303", Phone: "(864) 560-9200"},
	{Name: "Walgreens", Latitude: 34.9741850537861, Longitude: -81.93388128330479, Address: "1000 N Pine St, Spartanburg, SC 29303", Phone: "(864) 585-9136"},
	{Name: "Smith Drug Store", Latitude: 34.95454798385966, Longitude: -81.92983949931316, Address: "142 E Main St, Spartanburg, SC 29306", Phone: "(864) 583-4521"},
	{Name: "Pharmacy At Main", Latitude: 34.95596768888898, Longitude: -81.92088983476026, Address: "435 E Main St # 7, Spartanburg, SC 29302", Phone: "(864) 515-2100"},
}

// Pharmacies returns the registry with postal codes derived. The returned
// slice is freshly allocated so callers cannot mutate the registry.
func Pharmacies() []PharmacyLocation {
	out := make([]PharmacyLocation, len(pharmacyRegistry))
	copy(out, pharmacyRegistry)
	for i := range out {
		out[i].PostalCode = ExtractPostalCode(out[i].Address)
	}
	return out
}
