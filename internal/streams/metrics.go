package streams

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	valueOpened     = "opened"
	valueOpenFailed = "open_failed"
)

var (
	metricStreamOpenedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "log_stream_opened_total",
		},
		[]string{"compression", "result"},
	)
)
