package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes a counter and a histogram for HTTP traffic and a histogram
// for database query durations.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	EmployeesSaved      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
// It initializes the HTTP request counter and duration histogram, the
// employee mutation counter, and the database query duration histogram.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"handler", "code"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		EmployeesSaved: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_employees_saved_total",
			Help: "Total number of employee create and update operations.",
		}, []string{"operation"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'list_employees', 'create_employee', ...
	}

	metrics.EmployeesSaved.WithLabelValues("create")
	metrics.EmployeesSaved.WithLabelValues("update")

	return metrics
}
