package aggregators

import (
	"usage-counter/internal/shared/metrics"
)

var (
	metricBatchCountedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCounting,
			Name:      "batch_counted_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRecordsRejectedTotal counts records excluded from a batch, by hit factory error code.
	metricRecordsRejectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCounting,
			Name:      "records_rejected_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricMetricRecordEmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCounting,
			Name:      "metric_record_emitted_total",
		},
		[]string{"group"},
	)
)
