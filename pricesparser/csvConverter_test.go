package pricesparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

func TestReadRecords(t *testing.T) {
	csvData := `name,pharmacy,price
Ibuprofen,CVS Pharmacy,10.00
  Acetaminophen ,Walgreens,$8.50
`

	records, err := readRecords(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("readRecords: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Name != "Ibuprofen" || records[0].Pharmacy != "CVS Pharmacy" || records[0].Price != "10.00" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].NameNormalized != "acetaminophen" {
		t.Errorf("NameNormalized = %q, want acetaminophen", records[1].NameNormalized)
	}
	if records[1].Price != "$8.50" {
		t.Errorf("Price kept raw = %q, want $8.50", records[1].Price)
	}
}

func TestReadRecordsColumnOrder(t *testing.T) {
	// Columns are picked by header name, not position.
	csvData := `price,name,pharmacy,extra
12.49,Zyrtec,Rite Aid,ignored
`

	records, err := readRecords(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("readRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Zyrtec" || records[0].Price != "12.49" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestReadRecordsMissingColumn(t *testing.T) {
	// A feed without a pharmacy column reads it as empty for every row.
	csvData := `name,price
Ibuprofen,10.00
`

	records, err := readRecords(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("readRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Pharmacy != "" {
		t.Errorf("Pharmacy = %q, want empty", records[0].Pharmacy)
	}
}

func TestReadRecordsSkipsEmptyLines(t *testing.T) {
	csvData := "name,pharmacy,price\nIbuprofen,CVS,10.00\n\n\nZyrtec,CVS,12.00\n"

	records, err := readRecords(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("readRecords: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestReadRecordsLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and invalid as a standalone UTF-8 byte.
	raw := []byte("name,pharmacy,price\nIbuprof\xe9n,CVS,10.00\n")

	records, err := readRecords(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("readRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Ibuprofén" {
		t.Errorf("Name = %q, want Ibuprofén", records[0].Name)
	}
}

func TestReadRecordsEmptyFeed(t *testing.T) {
	if _, err := readRecords(strings.NewReader("")); err == nil {
		t.Error("expected an error for a feed with no header")
	}
}

func TestParsePartitionLocalFile(t *testing.T) {
	dir := t.TempDir()
	csvData := "name,pharmacy,price\nIbuprofen,CVS,10.00\n"
	if err := os.WriteFile(filepath.Join(dir, "prices.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	parser := NewPricesParser(dir)
	records, err := parser.ParsePartition(entities.DatasetPartition{Key: "general", File: "prices.csv"})
	if err != nil {
		t.Fatalf("ParsePartition: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestParsePartitionMissingFile(t *testing.T) {
	parser := NewPricesParser(t.TempDir())
	if _, err := parser.ParsePartition(entities.DatasetPartition{Key: "general", File: "absent.csv"}); err == nil {
		t.Error("expected an error for a missing feed file")
	}
}

func TestParsePartitionFetchFallsBackToLocal(t *testing.T) {
	dir := t.TempDir()
	csvData := "name,pharmacy,price\nIbuprofen,CVS,10.00\n"
	if err := os.WriteFile(filepath.Join(dir, "prices.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	// The remote is unreachable; the parser keeps serving the local copy.
	parser := NewPricesParser(dir).WithRemote("http://127.0.0.1:1")
	records, err := parser.ParsePartition(entities.DatasetPartition{Key: "general", File: "prices.csv"})
	if err != nil {
		t.Fatalf("ParsePartition with dead remote: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestDatasetPartitionCovers(t *testing.T) {
	p := entities.DatasetPartition{Key: "upstate", PostalPrefixes: []string{"293", "296"}}

	tests := []struct {
		postalCode string
		want       bool
	}{
		{"29316", true},
		{"29615", true},
		{"10001", false},
		{"29", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.Covers(tt.postalCode); got != tt.want {
			t.Errorf("Covers(%q) = %v, want %v", tt.postalCode, got, tt.want)
		}
	}
}

func TestGeneralPartitionCoversNothing(t *testing.T) {
	p := entities.DatasetPartition{Key: "general"}
	if p.Covers("29316") {
		t.Error("partition without prefixes should cover nothing")
	}
}
