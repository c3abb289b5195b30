package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FilesProcessed *prometheus.CounterVec
	RowsImported   *prometheus.CounterVec
	ImportErrors   *prometheus.CounterVec
	ImportDuration prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FilesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "The total number of processed ARINC files by final status",
		}, []string{"status"}),
		RowsImported: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_imported_total",
			Help:      "The total number of navigation rows created by entity kind",
		}, []string{"entity"}),
		ImportErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_errors_total",
			Help:      "The total number of import errors by kind",
		}, []string{"kind"}),
		ImportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_import_duration_seconds",
			Help:      "Time taken to import one ARINC file",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
