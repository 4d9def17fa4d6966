package hits

import (
	"usage-counter/internal/shared/metrics"
)

var (
	metricHitCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "hit_created_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricDoubleClickRemovedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "double_click_removed_total",
		},
		[]string{},
	)
)
