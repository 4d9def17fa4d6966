package ingestors

import (
	"usage-counter/internal/shared/metrics"
)

var (
	metricBatchUploadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_uploaded_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordUploadedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "record_uploaded_total",
		},
	)
)
