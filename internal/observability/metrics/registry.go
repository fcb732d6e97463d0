// Package metrics provides the Prometheus instruments that are not tied
// to a single HTTP request: content inventory gauges and database metrics.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NewsTotal tracks the number of active (not soft-deleted) articles.
	NewsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_total",
			Help: "Number of active news articles",
		},
	)

	// NewsDeletedTotal tracks the number of soft-deleted articles still
	// held in the table.
	NewsDeletedTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_deleted_total",
			Help: "Number of soft-deleted news articles awaiting permanent removal",
		},
	)

	// AdminsTotal tracks the number of active admin accounts.
	AdminsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "admins_total",
			Help: "Number of active admin accounts",
		},
	)

	// DBQueryDuration measures database query duration by operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks in-use database connections.
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordOperationDuration records the duration of a named database operation.
func RecordOperationDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateInventory sets the content inventory gauges.
func UpdateInventory(activeNews, deletedNews, activeAdmins int) {
	NewsTotal.Set(float64(activeNews))
	NewsDeletedTotal.Set(float64(deletedNews))
	AdminsTotal.Set(float64(activeAdmins))
}

// UpdateDBPoolStats publishes connection pool statistics.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}
