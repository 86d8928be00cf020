package aggregators

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	valueParsed   = "parsed"
	valueUnparsed = "unparsed"
)

var (
	// metricLinesTotal counts raw log lines read, labelled by whether they matched the log format.
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_total",
		},
		[]string{"result"},
	)

	// metricParsedPercent holds the parsed share of the last fully read log file.
	metricParsedPercent = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "parsed_percent",
		},
	)
)
