package scheduler

import (
	"fmt"
	"testing"

	"github.com/kcbailey111/AffordRX/data"
	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
	"github.com/kcbailey111/AffordRX/validation"
)

// mockParser serves canned records per partition and can fail selectively.
type mockParser struct {
	records map[string][]entities.MedicationPriceRecord
	fail    map[string]bool
	calls   int
}

func (m *mockParser) ParsePartition(p entities.DatasetPartition) ([]entities.MedicationPriceRecord, error) {
	m.calls++
	if m.fail[p.Key] {
		return nil, fmt.Errorf("feed unavailable for %s", p.Key)
	}
	return m.records[p.Key], nil
}

var _ interfaces.Parser = (*mockParser)(nil)

func testRecords() []entities.MedicationPriceRecord {
	return []entities.MedicationPriceRecord{
		{Name: "ibuprofen", NameNormalized: "ibuprofen", Pharmacy: "CVS", Price: "10.00"},
	}
}

func TestUpdateDataLoadsAllPartitions(t *testing.T) {
	dc := data.NewDataContainer(data.DefaultPartitions())
	parser := &mockParser{
		records: map[string][]entities.MedicationPriceRecord{
			"general": testRecords(),
			"upstate": testRecords(),
		},
		fail: map[string]bool{},
	}

	s := NewDataScheduler(dc, parser, validation.NewDataValidator())

	if err := s.updateData(); err != nil {
		t.Fatalf("updateData: %v", err)
	}

	if parser.calls != 2 {
		t.Errorf("parser called %d times, want 2", parser.calls)
	}
	for _, key := range []string{"general", "upstate"} {
		if got := dc.State(key); got != interfaces.StateReady {
			t.Errorf("State(%s) = %v, want ready", key, got)
		}
	}
	if len(dc.DrugNames()) != 1 {
		t.Errorf("DrugNames = %v, want one entry", dc.DrugNames())
	}
}

func TestUpdateDataPartitionFailsIndependently(t *testing.T) {
	dc := data.NewDataContainer(data.DefaultPartitions())
	parser := &mockParser{
		records: map[string][]entities.MedicationPriceRecord{
			"general": testRecords(),
		},
		fail: map[string]bool{"upstate": true},
	}

	s := NewDataScheduler(dc, parser, validation.NewDataValidator())

	err := s.updateData()
	if err == nil {
		t.Fatal("expected an error when a partition fails")
	}

	if got := dc.State("general"); got != interfaces.StateReady {
		t.Errorf("State(general) = %v, want ready despite the upstate failure", got)
	}
	if got := dc.State("upstate"); got != interfaces.StateFailed {
		t.Errorf("State(upstate) = %v, want failed", got)
	}
}

func TestUpdateDataSkipsWhenAlreadyUpdating(t *testing.T) {
	dc := data.NewDataContainer(data.DefaultPartitions())
	parser := &mockParser{fail: map[string]bool{}}

	s := NewDataScheduler(dc, parser, validation.NewDataValidator())

	if !dc.BeginUpdate() {
		t.Fatal("BeginUpdate failed")
	}
	defer dc.EndUpdate()

	if err := s.updateData(); err != nil {
		t.Fatalf("updateData while updating should be a no-op, got: %v", err)
	}
	if parser.calls != 0 {
		t.Errorf("parser called %d times during a concurrent update, want 0", parser.calls)
	}
}

func TestUpdateDataReleasesUpdateFlag(t *testing.T) {
	dc := data.NewDataContainer(data.DefaultPartitions())
	parser := &mockParser{fail: map[string]bool{"general": true, "upstate": true}}

	s := NewDataScheduler(dc, parser, validation.NewDataValidator())

	_ = s.updateData()

	if dc.IsUpdating() {
		t.Error("update flag still set after updateData returned")
	}
}
