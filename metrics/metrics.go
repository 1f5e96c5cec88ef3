package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Enquiry lifecycle metrics
	EnquiryOperationsCounter *prometheus.CounterVec

	// Profile section save metrics
	SectionSavesCounter *prometheus.CounterVec

	// Journey dashboard cache metrics
	JourneyCacheCounter *prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with the configured name prefix.
func InitMetrics(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	EnquiryOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_enquiry_operations_total",
			Help: "Total number of enquiry lifecycle operations",
		},
		[]string{"operation", "outcome"},
	)

	SectionSavesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_profile_section_saves_total",
			Help: "Total number of profile section save attempts",
		},
		[]string{"section", "outcome"},
	)

	JourneyCacheCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_journey_cache_total",
			Help: "Journey dashboard cache lookups",
		},
		[]string{"result"},
	)
}

// RecordEnquiryOperation increments the counter for enquiry operations.
// Safe to call before InitMetrics; recording is skipped until the metrics
// are registered.
func RecordEnquiryOperation(operation, outcome string) {
	if EnquiryOperationsCounter == nil {
		return
	}
	EnquiryOperationsCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordSectionSave increments the counter for profile section saves.
func RecordSectionSave(section, outcome string) {
	if SectionSavesCounter == nil {
		return
	}
	SectionSavesCounter.WithLabelValues(section, outcome).Inc()
}

// RecordJourneyCacheLookup increments the dashboard cache counter with
// result "hit" or "miss".
func RecordJourneyCacheLookup(result string) {
	if JourneyCacheCounter == nil {
		return
	}
	JourneyCacheCounter.WithLabelValues(result).Inc()
}
