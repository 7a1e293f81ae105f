package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the harvester.
type Metrics struct {
	PagesProcessed      *prometheus.CounterVec
	ErrorsTotal         *prometheus.CounterVec
	RecordsWritten      prometheus.Counter
	FieldMisses         *prometheus.CounterVec
	FetchDuration       *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers the metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PagesProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pages_processed_total",
			Help: "Total number of results or detail pages attempted.",
		}, []string{"pipeline"}),
		ErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of skipped items.",
		}, []string{"pipeline", "stage"}),
		RecordsWritten: f.NewCounter(prometheus.CounterOpts{
			Name: "records_written_total",
			Help: "Total number of listing records written.",
		}),
		FieldMisses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "field_misses_total",
			Help: "Fields that could not be located or parsed and fell back to their default.",
		}, []string{"field"}),
		FetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fetch_duration_seconds",
			Help:    "Duration of page fetches.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"fetcher"}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests to the monitoring server.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests to the monitoring server.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *Metrics) IncPages(pipeline string) {
	m.PagesProcessed.WithLabelValues(pipeline).Inc()
}

func (m *Metrics) IncErrors(pipeline, stage string) {
	m.ErrorsTotal.WithLabelValues(pipeline, stage).Inc()
}

func (m *Metrics) IncRecords() {
	m.RecordsWritten.Inc()
}

func (m *Metrics) IncFieldMiss(field string) {
	m.FieldMisses.WithLabelValues(field).Inc()
}
