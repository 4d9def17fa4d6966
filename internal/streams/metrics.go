package streams

import (
	"usage-counter/internal/shared/metrics"
)

var (
	streamBatchReceived = "batch_received"

	metricBatchReceivedProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_received_published_total",
		},
		[]string{"stream_id", "source_kind"},
	)

	metricBatchReceivedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_received_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
