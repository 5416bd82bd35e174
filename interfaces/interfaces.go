// Package interfaces defines core abstractions for the price-comparison
// service to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/kcbailey111/AffordRX/pricesparser/entities"
)

// PartitionState is the load state of one dataset partition.
type PartitionState int32

const (
	// StateLoading means the partition has not finished its first load.
	// Lookups against it must report "not ready", never block.
	StateLoading PartitionState = iota
	// StateReady means the partition loaded successfully and is queryable.
	StateReady
	// StateFailed means the last load attempt failed; the partition stays
	// unusable until a later refresh succeeds.
	StateFailed
)

func (s PartitionState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// DataQualityReport summarizes feed issues found during a load.
type DataQualityReport struct {
	TotalRecords    int
	MissingName     int
	MissingPharmacy int
	UnparsablePrice int
	NegativePrice   int
	DuplicatePairs  []string // first 10 duplicate (name, pharmacy) pairs
}

// DataStore is the contract for dataset storage. It provides thread-safe
// access to the per-partition price records with atomic swaps for
// zero-downtime refreshes.
type DataStore interface {
	// Data retrieval
	Partitions() []entities.DatasetPartition
	Records(partitionKey string) []entities.MedicationPriceRecord
	State(partitionKey string) PartitionState
	PartitionFor(postalCode string) string
	DrugNames() []string
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Data update
	SetPartition(partitionKey string, records []entities.MedicationPriceRecord)
	SetPartitionFailed(partitionKey string)
	BeginUpdate() bool
	EndUpdate()
	SetServerStartTime(t time.Time)
}

// Parser is the contract for loading one price feed partition from its
// source file into memory.
type Parser interface {
	ParsePartition(p entities.DatasetPartition) ([]entities.MedicationPriceRecord, error)
}

// Scheduler manages the initial dataset load, periodic refreshes and
// staleness monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker reports system health derived from dataset state and age.
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, httpStatus int)
	CalculateNextUpdate() time.Time
}

// HTTPHandler defines the contract for HTTP request handlers.
// It provides a consistent interface for all API endpoints.
type HTTPHandler interface {
	SearchPrices(w http.ResponseWriter, r *http.Request)
	ListMedications(w http.ResponseWriter, r *http.Request)
	MedicationGuidance(w http.ResponseWriter, r *http.Request)
	ListPharmacies(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// DataValidator validates user search input and reports feed quality.
type DataValidator interface {
	ValidateSearchTerm(input string) error
	ValidateSelection(field, input string) error
	ReportDataQuality(records []entities.MedicationPriceRecord) *DataQualityReport
}
