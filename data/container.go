// Package data provides thread-safe storage for the price feed partitions.
// It includes the DataContainer struct with atomic operations for
// zero-downtime refreshes and an explicit per-partition load state machine
// (loading -> ready | failed) that gates lookups instead of ad-hoc booleans.
package data

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DefaultPartitionKey is the general partition used when no region-specific
// partition covers a postal code.
const DefaultPartitionKey = "general"

// DefaultPartitions returns the feed layout: a general partition plus one
// region-specific partition for the upstate coverage area.
func DefaultPartitions() []entities.DatasetPartition {
	return []entities.DatasetPartition{
		{Key: DefaultPartitionKey, File: "prices.csv"},
		{Key: "upstate", File: "prices_upstate.csv", PostalPrefixes: []string{"293", "296"}},
	}
}

// partitionSlot holds one partition's records and load state.
type partitionSlot struct {
	spec    entities.DatasetPartition
	records atomic.Value // []entities.MedicationPriceRecord
	state   atomic.Int32 // interfaces.PartitionState
}

// DataContainer holds all partitions with atomic pointers so a refresh
// never blocks or tears an in-flight search.
type DataContainer struct {
	slots           map[string]*partitionSlot
	order           []string
	drugNames       atomic.Value // []string, case-insensitive sorted
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a container for the given partitions, all in the
// loading state with no records.
func NewDataContainer(partitions []entities.DatasetPartition) *DataContainer {
	dc := &DataContainer{slots: make(map[string]*partitionSlot, len(partitions))}
	for _, p := range partitions {
		slot := &partitionSlot{spec: p}
		slot.records.Store(make([]entities.MedicationPriceRecord, 0))
		slot.state.Store(int32(interfaces.StateLoading))
		dc.slots[p.Key] = slot
		dc.order = append(dc.order, p.Key)
	}
	dc.drugNames.Store(make([]string, 0))
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Partitions returns the partition specs in registration order.
func (dc *DataContainer) Partitions() []entities.DatasetPartition {
	out := make([]entities.DatasetPartition, 0, len(dc.order))
	for _, key := range dc.order {
		out = append(out, dc.slots[key].spec)
	}
	return out
}

// Records returns the current records of a partition.
func (dc *DataContainer) Records(partitionKey string) []entities.MedicationPriceRecord {
	slot, ok := dc.slots[partitionKey]
	if !ok {
		logging.Warn("Unknown partition requested", "partition", partitionKey)
		return []entities.MedicationPriceRecord{}
	}
	if v := slot.records.Load(); v != nil {
		if records, ok := v.([]entities.MedicationPriceRecord); ok {
			return records
		}
	}
	return []entities.MedicationPriceRecord{}
}

// State returns the load state of a partition. Unknown keys report failed.
func (dc *DataContainer) State(partitionKey string) interfaces.PartitionState {
	slot, ok := dc.slots[partitionKey]
	if !ok {
		return interfaces.StateFailed
	}
	return interfaces.PartitionState(slot.state.Load())
}

// PartitionFor selects the partition to search for a postal code: the first
// ready region-specific partition covering the code, else the general one.
func (dc *DataContainer) PartitionFor(postalCode string) string {
	for _, key := range dc.order {
		slot := dc.slots[key]
		if len(slot.spec.PostalPrefixes) == 0 {
			continue
		}
		if slot.spec.Covers(postalCode) && dc.State(key) == interfaces.StateReady {
			return key
		}
	}
	return DefaultPartitionKey
}

// DrugNames returns the distinct drug names across all ready partitions,
// sorted case-insensitively for autocomplete.
func (dc *DataContainer) DrugNames() []string {
	if v := dc.drugNames.Load(); v != nil {
		if names, ok := v.([]string); ok {
			return names
		}
	}
	return []string{}
}

// SetPartition marks a partition ready with fresh records and rebuilds the
// drug name catalog.
func (dc *DataContainer) SetPartition(partitionKey string, records []entities.MedicationPriceRecord) {
	slot, ok := dc.slots[partitionKey]
	if !ok {
		logging.Warn("Attempted to update unknown partition", "partition", partitionKey)
		return
	}
	slot.records.Store(records)
	slot.state.Store(int32(interfaces.StateReady))
	dc.lastUpdated.Store(time.Now())
	dc.rebuildDrugNames()
}

// SetPartitionFailed marks a partition failed. Existing records are kept in
// place but lookups will no longer hit this partition.
func (dc *DataContainer) SetPartitionFailed(partitionKey string) {
	slot, ok := dc.slots[partitionKey]
	if !ok {
		return
	}
	slot.state.Store(int32(interfaces.StateFailed))
}

// rebuildDrugNames unions the distinct drug names of every ready partition.
func (dc *DataContainer) rebuildDrugNames() {
	seen := make(map[string]string)
	for _, key := range dc.order {
		if dc.State(key) != interfaces.StateReady {
			continue
		}
		for _, rec := range dc.Records(key) {
			name := strings.TrimSpace(rec.Name)
			if name == "" {
				continue
			}
			lower := strings.ToLower(name)
			if _, exists := seen[lower]; !exists {
				seen[lower] = name
			}
		}
	}
	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	dc.drugNames.Store(names)
}

// GetLastUpdated returns the timestamp of the last successful partition load.
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}
	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a dataset refresh is currently in progress.
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time.
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time.
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}
	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// BeginUpdate marks the start of a refresh. Returns false if another
// refresh is already in progress.
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a refresh.
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
