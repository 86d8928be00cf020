package reports

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	// metricRunsTotal counts report runs by outcome: ran, no_log_file, report_exists or failed.
	// Failed runs carry the service error code.
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{"outcome", metrics.FieldErrorCode},
	)

	metricRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_duration_seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"outcome"},
	)
)
