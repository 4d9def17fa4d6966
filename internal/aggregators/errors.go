package aggregators

import (
	"fmt"

	"usage-counter/internal/shared/svcerrors"
)

const (
	codeInternalBatchLoadFailed  = "CNT_9000"
	codeInternalMetricSinkFailed = "CNT_9001"
	codeInternalSinkIncomplete   = "CNT_9002"
)

// errInternalBatchLoadFailed returns an error when the records of a batch cannot be loaded.
func errInternalBatchLoadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchLoadFailed, fmt.Errorf("batchLoadFailed: %w", cause))
}

// errInternalMetricSinkFailed returns an error when the metric sink aborts.
func errInternalMetricSinkFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMetricSinkFailed, fmt.Errorf("metricSinkFailed: %w", cause))
}

// errInternalSinkIncomplete returns an error when some metric records could not be written.
func errInternalSinkIncomplete(failed int) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSinkIncomplete, fmt.Errorf("sinkIncomplete: %d metric records failed", failed))
}
