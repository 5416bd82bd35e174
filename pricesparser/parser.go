package pricesparser

import (
	"path/filepath"

	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

// Compile-time check to ensure PricesParser implements Parser interface
var _ interfaces.Parser = (*PricesParser)(nil)

// PricesParser loads feed partitions from a data directory, optionally
// refreshing them from a remote base URL first.
type PricesParser struct {
	dataDir string
	baseURL string // empty disables remote fetch
}

// NewPricesParser creates a parser reading from dataDir.
func NewPricesParser(dataDir string) *PricesParser {
	return &PricesParser{dataDir: dataDir}
}

// WithRemote enables fetching each partition file from baseURL before
// parsing.
func (p *PricesParser) WithRemote(baseURL string) *PricesParser {
	p.baseURL = baseURL
	return p
}

// ParsePartition loads one partition's records. A fetch failure falls back
// to the existing local file; a parse failure is the caller's signal to
// mark the partition failed.
func (p *PricesParser) ParsePartition(part entities.DatasetPartition) ([]entities.MedicationPriceRecord, error) {
	if p.baseURL != "" {
		if err := FetchDataset(p.baseURL+"/"+part.File, p.dataDir, part.File); err != nil {
			// Keep serving from the last good copy on disk.
			logging.Warn("Feed fetch failed, using local copy", "partition", part.Key, "error", err)
		}
	}
	return readRecordsFromFile(filepath.Join(p.dataDir, part.File))
}
