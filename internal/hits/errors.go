package hits

import (
	"usage-counter/internal/shared/svcerrors"
)

const (
	codeRecordInvalid    = "HIT_1000"
	codeServerTimeFormat = "HIT_1001"
)

// errRecordInvalid returns an error for a record missing a required field.
func errRecordInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRecordInvalid, msg, cause)
}

// errServerTimeFormat returns an error for a server time that is not YYYY-MM-DD HH:MM:SS.
func errServerTimeFormat(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeServerTimeFormat, "serverTime must be YYYY-MM-DD HH:MM:SS", cause)
}
