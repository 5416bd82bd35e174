package data

import (
	"testing"
	"time"

	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

func testPartitions() []entities.DatasetPartition {
	return []entities.DatasetPartition{
		{Key: DefaultPartitionKey, File: "prices.csv"},
		{Key: "upstate", File: "prices_upstate.csv", PostalPrefixes: []string{"293", "296"}},
	}
}

func TestNewDataContainerStartsLoading(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	for _, p := range dc.Partitions() {
		if got := dc.State(p.Key); got != interfaces.StateLoading {
			t.Errorf("State(%s) = %v, want loading", p.Key, got)
		}
		if got := len(dc.Records(p.Key)); got != 0 {
			t.Errorf("Records(%s) has %d entries, want 0", p.Key, got)
		}
	}

	if !dc.GetLastUpdated().IsZero() {
		t.Error("GetLastUpdated should be zero before any load")
	}
}

func TestSetPartitionMarksReady(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	dc.SetPartition(DefaultPartitionKey, []entities.MedicationPriceRecord{
		{Name: "Ibuprofen", NameNormalized: "ibuprofen", Pharmacy: "CVS Pharmacy", Price: "10.00"},
	})

	if got := dc.State(DefaultPartitionKey); got != interfaces.StateReady {
		t.Errorf("State = %v, want ready", got)
	}
	if got := len(dc.Records(DefaultPartitionKey)); got != 1 {
		t.Errorf("Records has %d entries, want 1", got)
	}
	if dc.GetLastUpdated().IsZero() {
		t.Error("GetLastUpdated should be set after a load")
	}
}

func TestSetPartitionFailedKeepsRecords(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	records := []entities.MedicationPriceRecord{
		{Name: "Ibuprofen", NameNormalized: "ibuprofen", Pharmacy: "CVS", Price: "10.00"},
	}
	dc.SetPartition(DefaultPartitionKey, records)
	dc.SetPartitionFailed(DefaultPartitionKey)

	if got := dc.State(DefaultPartitionKey); got != interfaces.StateFailed {
		t.Errorf("State = %v, want failed", got)
	}
	// Records stay in place; only the state gates lookups.
	if got := len(dc.Records(DefaultPartitionKey)); got != 1 {
		t.Errorf("Records has %d entries after failure, want 1", got)
	}
}

func TestPartitionFor(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	// Region partition not ready yet: everything falls to general.
	if got := dc.PartitionFor("29615"); got != DefaultPartitionKey {
		t.Errorf("PartitionFor(29615) before load = %q, want %q", got, DefaultPartitionKey)
	}

	dc.SetPartition("upstate", []entities.MedicationPriceRecord{
		{Name: "Ibuprofen", NameNormalized: "ibuprofen", Pharmacy: "CVS", Price: "9.00"},
	})

	tests := []struct {
		postalCode string
		want       string
	}{
		{"29615", "upstate"},
		{"29301", "upstate"},
		{"29601", "upstate"},
		{"10001", DefaultPartitionKey},
		{"", DefaultPartitionKey},
	}

	for _, tt := range tests {
		if got := dc.PartitionFor(tt.postalCode); got != tt.want {
			t.Errorf("PartitionFor(%q) = %q, want %q", tt.postalCode, got, tt.want)
		}
	}
}

func TestPartitionForSkipsFailedRegion(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	dc.SetPartition("upstate", nil)
	dc.SetPartitionFailed("upstate")

	if got := dc.PartitionFor("29615"); got != DefaultPartitionKey {
		t.Errorf("PartitionFor(29615) with failed region = %q, want %q", got, DefaultPartitionKey)
	}
}

func TestDrugNamesUnion(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	dc.SetPartition(DefaultPartitionKey, []entities.MedicationPriceRecord{
		{Name: "Ibuprofen", NameNormalized: "ibuprofen", Pharmacy: "CVS", Price: "10.00"},
		{Name: "acetaminophen", NameNormalized: "acetaminophen", Pharmacy: "CVS", Price: "8.00"},
		{Name: "IBUPROFEN", NameNormalized: "ibuprofen", Pharmacy: "Walgreens", Price: "11.00"},
	})
	dc.SetPartition("upstate", []entities.MedicationPriceRecord{
		{Name: "Zyrtec", NameNormalized: "zyrtec", Pharmacy: "CVS", Price: "12.00"},
	})

	names := dc.DrugNames()
	want := []string{"acetaminophen", "Ibuprofen", "Zyrtec"}
	if len(names) != len(want) {
		t.Fatalf("DrugNames = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("DrugNames[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBeginUpdateBlocksConcurrent(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	if !dc.BeginUpdate() {
		t.Fatal("first BeginUpdate should succeed")
	}
	if dc.BeginUpdate() {
		t.Error("second BeginUpdate should be rejected while updating")
	}
	if !dc.IsUpdating() {
		t.Error("IsUpdating should report true during an update")
	}

	dc.EndUpdate()

	if dc.IsUpdating() {
		t.Error("IsUpdating should report false after EndUpdate")
	}
	if !dc.BeginUpdate() {
		t.Error("BeginUpdate should succeed again after EndUpdate")
	}
	dc.EndUpdate()
}

func TestServerStartTime(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	start := time.Now().Add(-time.Minute)
	dc.SetServerStartTime(start)

	if got := dc.GetServerStartTime(); !got.Equal(start) {
		t.Errorf("GetServerStartTime = %v, want %v", got, start)
	}
}

func TestUnknownPartition(t *testing.T) {
	dc := NewDataContainer(testPartitions())

	if got := dc.State("nope"); got != interfaces.StateFailed {
		t.Errorf("State(unknown) = %v, want failed", got)
	}
	if got := len(dc.Records("nope")); got != 0 {
		t.Errorf("Records(unknown) has %d entries, want 0", got)
	}
}
