package classifiers

import "usage-counter/internal/shared/metrics"

var (
	metricClassifiedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubClassifier,
			Name:      "classified_total",
		},
		[]string{"scheme", "item_type"},
	)

	metricLookupMissTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubClassifier,
			Name:      "lookup_miss_total",
		},
		[]string{"table"},
	)
)

const (
	tablePIDToISSN       = "pid_to_issn"
	tablePDFToPID        = "pdf_to_pid"
	tablePIDToFormatLang = "pid_to_format_lang"
	tablePIDToYOP        = "pid_to_yop"
)
