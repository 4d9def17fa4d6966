package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"usage-counter/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("ING_1000", "invalid batch", nil))
	assert.Equal(t, "ING_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusAccepted)
	_, _ = appWriter.Write([]byte("accepted"))

	assert.Equal(t, http.StatusAccepted, appWriter.Status())
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "accepted", rr.Body.String())
}

func TestResponseOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		writer     func() http.ResponseWriter
		wantStatus int
		wantCode   string
	}{
		{
			name:       "plain writer defaults to 200",
			writer:     func() http.ResponseWriter { return httptest.NewRecorder() },
			wantStatus: http.StatusOK,
		},
		{
			name:       "app writer without write defaults to 200",
			writer:     func() http.ResponseWriter { return newAppResponseWriter(httptest.NewRecorder(), 1) },
			wantStatus: http.StatusOK,
		},
		{
			name: "app writer with service error",
			writer: func() http.ResponseWriter {
				w := newAppResponseWriter(httptest.NewRecorder(), 1)
				w.SetServiceError(svcerrors.NewResourceConflictError("ING_1001", "batch already uploaded", nil))
				w.WriteHeader(http.StatusConflict)
				return w
			},
			wantStatus: http.StatusConflict,
			wantCode:   "ING_1001",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, code := responseOutcome(tt.writer())
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
