// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrenchbase_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wrenchbase_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SearchQueriesTotal counts search requests by search type and outcome.
	SearchQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrenchbase_search_queries_total",
		Help: "Total number of search queries by type and outcome",
	}, []string{"type", "outcome"})

	// SearchResultSize records result set sizes per search type.
	SearchResultSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wrenchbase_search_result_size",
		Help:    "Number of rows returned per search",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"type"})

	// WebhookEventsTotal counts identity webhook deliveries by event type and outcome.
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrenchbase_webhook_events_total",
		Help: "Total number of identity webhook events by type and outcome",
	}, []string{"event", "outcome"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
