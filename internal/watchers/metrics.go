package watchers

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWatcher,
			Name:      "events_total",
		},
		[]string{"op"},
	)

	metricTriggersTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWatcher,
			Name:      "triggers_total",
		},
		[]string{},
	)
)
