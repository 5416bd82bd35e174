package entities

// DatasetPartition describes one price feed file. A partition with postal
// prefixes is region-specific: it is preferred over the general partition
// for postal codes it covers, once it has loaded successfully.
type DatasetPartition struct {
	Key            string   `json:"key"`
	File           string   `json:"file"`
	PostalPrefixes []string `json:"postalPrefixes,omitempty"`
}

// Covers reports whether the partition's prefix list matches the postal
// code. The general partition (no prefixes) covers nothing explicitly; it
// is the fallback, not a match.
func (p DatasetPartition) Covers(postalCode string) bool {
	if postalCode == "" {
		return false
	}
	for _, prefix := range p.PostalPrefixes {
		if len(postalCode) >= len(prefix) && postalCode[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
