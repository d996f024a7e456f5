package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records service-level request counters and latencies
type PrometheusMetrics struct {
	searchRequests *prometheus.CounterVec
	searchDuration prometheus.Histogram
	reportRequests *prometheus.CounterVec
	reportDuration prometheus.Histogram
}

var (
	metricsOnce     sync.Once
	metricsInstance *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide metrics recorder. Collectors
// register with the default registry exactly once, so repeated construction
// is safe.
func NewPrometheusMetrics() MetricsRecorderInterface {
	metricsOnce.Do(func() {
		metricsInstance = &PrometheusMetrics{
			searchRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "transaction_search_requests_total",
					Help: "Total number of transaction search requests",
				},
				[]string{"status"},
			),
			searchDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "transaction_search_duration_seconds",
					Help:    "Transaction search duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
			reportRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "monthly_report_requests_total",
					Help: "Total number of monthly budget report requests",
				},
				[]string{"status"},
			),
			reportDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "monthly_report_duration_seconds",
					Help:    "Monthly budget report generation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
		}
	})
	return metricsInstance
}

// IncrementCounter bumps the counter registered under name
func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "transaction.search":
		if status != "" {
			m.searchRequests.WithLabelValues(status).Inc()
		}
	case "report.monthly":
		if status != "" {
			m.reportRequests.WithLabelValues(status).Inc()
		}
	}
}

// RecordProcessingTime observes a duration on the histogram registered
// under name
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.search":
		m.searchDuration.Observe(duration.Seconds())
	case "report.monthly":
		m.reportDuration.Observe(duration.Seconds())
	}
}
