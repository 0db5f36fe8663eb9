// Package metrics exposes the Prometheus collectors shared by the api and worker processes.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hrms_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	requestsSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_requests_submitted_total",
			Help: "Requests created, by request type code and initial status",
		},
		[]string{"type_code", "status"},
	)

	requestTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_request_transitions_total",
			Help: "Terminal request transitions, by category and target status",
		},
		[]string{"category", "status"},
	)

	outboxPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_outbox_published_total",
			Help: "Outbox events handed to Kafka, by topic and result",
		},
		[]string{"topic", "result"},
	)

	databaseConnectionsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hrms_database_connections_open",
			Help: "Number of open database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hrms_database_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		apiRequestsTotal,
		apiRequestDuration,
		requestsSubmittedTotal,
		requestTransitionsTotal,
		outboxPublishedTotal,
		databaseConnectionsOpen,
		databaseConnectionsIdle,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordAPIRequest(method, path string, status int, seconds float64) {
	if path == "" {
		path = "unmatched"
	}
	apiRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func RecordSubmitted(typeCode, status string) {
	requestsSubmittedTotal.WithLabelValues(typeCode, status).Inc()
}

func RecordTransition(category, status string) {
	requestTransitionsTotal.WithLabelValues(category, status).Inc()
}

func RecordOutboxPublished(topic, result string) {
	outboxPublishedTotal.WithLabelValues(topic, result).Inc()
}

func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsOpen.Set(float64(stats.OpenConnections))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	return nil
}
