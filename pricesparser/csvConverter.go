// Package pricesparser loads the scraped price feed CSV files into memory
// and optionally fetches fresh copies from a remote source.
package pricesparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

// readRecords parses one feed CSV. The header row names the columns; Name,
// Pharmacy and Price are picked by name so extra columns and reordered
// files keep working. A missing column reads as the empty string for every
// row, per the feed contract.
func readRecords(r io.Reader) ([]entities.MedicationPriceRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	// Scraper output is usually UTF-8 but older files are ISO-8859-1
	var reader io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		reader = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	field := func(row []string, name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []entities.MedicationPriceRecord
	lineCount := 0
	skippedEmptyLines := 0
	skippedBadRows := 0

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		lineCount++
		if err != nil {
			skippedBadRows++
			continue
		}
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			skippedEmptyLines++
			continue
		}

		name := field(row, "name")
		record := entities.MedicationPriceRecord{
			Name:           name,
			Pharmacy:       field(row, "pharmacy"),
			Price:          field(row, "price"),
			NameNormalized: strings.ToLower(strings.TrimSpace(name)),
		}
		records = append(records, record)
	}

	if skippedEmptyLines > 0 || skippedBadRows > 0 {
		logging.Info("Feed skip statistics",
			"empty_lines", skippedEmptyLines,
			"bad_rows", skippedBadRows,
			"total_lines", lineCount,
			"records_parsed", len(records))
	}

	return records, nil
}

// readRecordsFromFile opens and parses a feed file on disk.
func readRecordsFromFile(path string) ([]entities.MedicationPriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("Failed to close feed file", "path", path, "error", err)
		}
	}()
	return readRecords(f)
}
