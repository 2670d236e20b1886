package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RequestTotal counts HTTP requests by method, route, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// EntitiesCreated counts successful creates by entity (user, post).
	EntitiesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of users and posts created",
		},
		[]string{"entity"},
	)

	// StorageErrors counts storage failures that map to the generic failure status, by operation.
	StorageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_errors_total",
			Help: "Total number of unclassified storage errors by operation",
		},
		[]string{"op"},
	)
)

var initOnce sync.Once

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, EntitiesCreated, StorageErrors)
	})
}

// UnmatchedRoute labels requests that did not match any route, keeping label cardinality bounded.
const UnmatchedRoute = "unmatched"

// RecordRequest records duration and count for an HTTP request. route is the
// router pattern (e.g. /users/{username}), never the raw path.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	if route == "" {
		route = UnmatchedRoute
	}
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// IncEntitiesCreated increments the created counter for entity (user or post).
func IncEntitiesCreated(entity string) {
	EntitiesCreated.WithLabelValues(entity).Inc()
}

// IncStorageErrors increments the storage error counter for op.
func IncStorageErrors(op string) {
	StorageErrors.WithLabelValues(op).Inc()
}
