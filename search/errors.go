package search

import (
	"errors"
	"fmt"
)

var (
	// ErrDataNotReady is returned while no partition has finished loading.
	ErrDataNotReady = errors.New("price data is not ready yet")

	// ErrDrugNotFound means the medication matches no record in any loaded
	// partition.
	ErrDrugNotFound = errors.New("medication not found in any dataset")

	// ErrNoPharmacyResults means the medication exists in the feed but no
	// registry pharmacy matched a priced record.
	ErrNoPharmacyResults = errors.New("no pharmacy prices found for medication")
)

// NoResultsError wraps ErrNoPharmacyResults with example alternatives the
// caller can show to the user.
type NoResultsError struct {
	Medication  string
	Suggestions []string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no pharmacy prices found for %q", e.Medication)
}

func (e *NoResultsError) Unwrap() error { return ErrNoPharmacyResults }
