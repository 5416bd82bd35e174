// Package metrics provides Prometheus metrics for HTTP server monitoring and
// for the price dataset itself:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - dataset_records: Gauge with a partition label
//   - price_searches_total: Counter with an outcome label
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen in last ~5 minutes)",
		},
	)

	DatasetRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Loaded price records per dataset partition",
		},
		[]string{"partition"},
	)

	DatasetRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_refresh_total",
			Help: "Dataset refresh attempts by result",
		},
		[]string{"partition", "result"},
	)

	PriceSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_searches_total",
			Help: "Price searches served by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(DatasetRecords)
	prometheus.MustRegister(DatasetRefreshTotal)
	prometheus.MustRegister(PriceSearchesTotal)
}
