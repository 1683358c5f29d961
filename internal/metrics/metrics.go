package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optic_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optic_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SalesCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "optic_sales_completed_total",
			Help: "Total number of completed sales",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "optic_payments_recorded_total",
			Help: "Total number of recorded sale payments",
		},
	)

	SnapshotSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optic_snapshot_saves_total",
			Help: "Total number of database snapshot writes",
		},
		[]string{"result"},
	)

	BackupUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optic_backup_uploads_total",
			Help: "Total number of off-site backup uploads",
		},
		[]string{"result"},
	)
)
