package stores

import (
	"usage-counter/internal/shared/metrics"
)

const (
	codeJournalNotFound = "SNK_1000"
	codeDuplicateItem   = "SNK_1001"
	codeSinkFailed      = "SNK_9000"
)

var (
	metricSinkRecordTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "record_total",
		},
		[]string{"group", metrics.FieldErrorCode},
	)
)
