// Package health reports readiness and freshness of the price dataset.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/kcbailey111/AffordRX/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		dataStore: dataStore,
	}
}

// HealthCheck returns HTTP-specific health data.
// Used by the /health endpoint.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	partitions := h.dataStore.Partitions()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	dataAge := time.Since(lastUpdate)

	readyCount := 0
	failedCount := 0
	totalRecords := 0
	partitionStates := make(map[string]any, len(partitions))
	for _, p := range partitions {
		state := h.dataStore.State(p.Key)
		records := len(h.dataStore.Records(p.Key))
		totalRecords += records
		partitionStates[p.Key] = map[string]any{
			"state":   state.String(),
			"records": records,
		}
		switch state {
		case interfaces.StateReady:
			readyCount++
		case interfaces.StateFailed:
			failedCount++
		}
	}

	switch {
	case readyCount == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 48*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 24*time.Hour:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	case failedCount > 0:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":    lastUpdate.Format(time.RFC3339),
		"data_age_hours": math.Round(dataAge.Hours()*10) / 10,
		"partitions":     partitionStates,
		"total_records":  totalRecords,
		"medications":    len(h.dataStore.DrugNames()),
		"is_updating":    isUpdating,
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled update time
func (h *HealthCheckerImpl) CalculateNextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	sixPM := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())

	// If current time is before 6:00 AM, next update is 6:00 AM today
	if now.Before(sixAM) {
		return sixAM
	}

	// If current time is between 6:00 AM and 6:00 PM, next update is 6:00 PM today
	if now.Before(sixPM) {
		return sixPM
	}

	// If current time is after 6:00 PM, next update is 6:00 AM tomorrow
	return sixAM.AddDate(0, 0, 1)
}
