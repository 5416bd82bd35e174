// Package scheduler drives the initial dataset load, the twice-daily
// refreshes and the staleness monitor.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/metrics"
)

var _ interfaces.Scheduler = (*DataScheduler)(nil)

// DataScheduler loads every dataset partition through the injected parser
// and swaps the results into the data store.
type DataScheduler struct {
	dataStore interfaces.DataStore
	parser    interfaces.Parser
	validator interfaces.DataValidator
	scheduler *gocron.Scheduler
}

// NewDataScheduler creates a new scheduler with injected dependencies
func NewDataScheduler(dataStore interfaces.DataStore, parser interfaces.Parser,
	validator interfaces.DataValidator) *DataScheduler {
	return &DataScheduler{
		dataStore: dataStore,
		parser:    parser,
		validator: validator,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial load, then schedules refreshes at 06:00 and
// 18:00 daily. A failed initial load is not fatal: the affected partitions
// stay in the failed state and searches report that the data is unavailable
// until a later refresh succeeds.
func (s *DataScheduler) Start() error {
	if err := s.updateData(); err != nil {
		logging.Error("Initial data load incomplete", "error", err)
	}

	_, err := s.scheduler.Every(1).Days().At("06:00;18:00").Do(func() {
		if err := s.updateData(); err != nil {
			logging.Error("Failed to update data", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule updates", "error", err)
		return fmt.Errorf("failed to schedule updates: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *DataScheduler) Stop() {
	s.scheduler.Stop()
}

// updateData reloads every partition. Partitions fail independently: one
// bad feed file never blocks the others from going ready.
func (s *DataScheduler) updateData() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Update already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	logging.Info("Starting dataset update", "at", time.Now().Format(time.RFC3339))
	start := time.Now()

	var failed int
	for _, part := range s.dataStore.Partitions() {
		records, err := s.parser.ParsePartition(part)
		if err != nil {
			failed++
			s.dataStore.SetPartitionFailed(part.Key)
			metrics.DatasetRefreshTotal.WithLabelValues(part.Key, "error").Inc()
			logging.Error("Failed to load partition", "partition", part.Key, "error", err)
			continue
		}

		s.logQuality(part.Key, s.validator.ReportDataQuality(records))

		s.dataStore.SetPartition(part.Key, records)
		metrics.DatasetRefreshTotal.WithLabelValues(part.Key, "ok").Inc()
		metrics.DatasetRecords.WithLabelValues(part.Key).Set(float64(len(records)))
	}

	elapsed := time.Since(start)
	logging.Info("Dataset update completed",
		"duration", elapsed.String(),
		"partitions", len(s.dataStore.Partitions()),
		"failed", failed,
		"medications", len(s.dataStore.DrugNames()))

	if failed > 0 {
		return fmt.Errorf("%d partition(s) failed to load", failed)
	}
	return nil
}

func (s *DataScheduler) logQuality(partition string, report *interfaces.DataQualityReport) {
	if report == nil {
		return
	}

	logging.Info("Data quality report",
		"partition", partition,
		"total_records", report.TotalRecords,
		"missing_name", report.MissingName,
		"missing_pharmacy", report.MissingPharmacy,
		"unparsable_price", report.UnparsablePrice,
		"negative_price", report.NegativePrice,
		"duplicate_pairs", len(report.DuplicatePairs))

	if len(report.DuplicatePairs) > 0 {
		logging.Warn("Duplicate price records in feed",
			"partition", partition,
			"examples", report.DuplicatePairs)
	}
}

// startHealthMonitoring warns when the data goes stale between refreshes
func (s *DataScheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.dataStore.GetLastUpdated()
			if time.Since(lastUpdate) > 13*time.Hour {
				logging.Warn("Data hasn't been refreshed in over 13 hours",
					"last_update", lastUpdate.Format(time.RFC3339))
			}
		}
	}()
}
