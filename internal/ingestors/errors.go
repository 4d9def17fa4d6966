package ingestors

import (
	"fmt"

	"usage-counter/internal/shared/svcerrors"
)

// UploadService errors
const (
	codeValidationFailed     = "ING_1000"
	codeBatchAlreadyUploaded = "ING_1001"

	codeInternalRecordBatchStoreFailed = "ING_9000"
	codeInternalBatchProducerFailed    = "ING_9001"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadyUploaded returns an error when a batch id was already stored.
func errBatchAlreadyUploaded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyUploaded, "batch already uploaded", cause)
}

func errInternalRecordBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordBatchStoreFailed, fmt.Errorf("recordBatchStoreFailed: %w", cause))
}

func errInternalBatchProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchProducerFailed, fmt.Errorf("batchProducerFailed: %w", cause))
}
