package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the metrics used for monitoring the service: a counter for
// handled data-endpoint HTTP requests and a histogram for database query
// durations.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered with the provided Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "empleados_http_requests_total",
			Help: "Total number of handled data-endpoint HTTP requests (/get and /post), by handler and status code.",
		}, []string{"handler", "code"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "empleados_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'ensure_schema', 'list_empleados', 'create_empleado'
	}

	return metrics
}
