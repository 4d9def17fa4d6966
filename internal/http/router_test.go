package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usage-counter/internal/ingestors"
	ingestormocks "usage-counter/internal/ingestors/mocks"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/svcerrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockUploadService := ingestormocks.NewMockUploadService(ctrl)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	router := NewRouter(mockUploadService, db, loggers.Nop())

	t.Run("upload accepted", func(t *testing.T) {
		mockUploadService.EXPECT().
			UploadBatch(gomock.Any(), "scl", "", gomock.Any()).
			Return(&ingestors.UploadResult{BatchID: "b1", Collection: "scl", RecordCount: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/batches?collection=scl", strings.NewReader(uploadBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.JSONEq(t, `{"batchId":"b1","collection":"scl","recordCount":1}`, rr.Body.String())
	})

	t.Run("duplicate upload", func(t *testing.T) {
		mockUploadService.EXPECT().
			UploadBatch(gomock.Any(), "", "b1", gomock.Any()).
			Return(nil, svcerrors.NewResourceConflictError("ING_1001", "batch already uploaded", nil))

		req := httptest.NewRequest(http.MethodPost, "/batches", strings.NewReader(uploadBody))
		req.Header.Set(headerIdempotencyKey, "b1")
		req.Header.Set(headerRequestID, "req-1")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var errorResponse ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
		assert.Equal(t, ErrorResponse{
			RequestID:        "req-1",
			ErrorCategory:    "resource_conflict",
			ErrorCode:        "ING_1001",
			ErrorDescription: "batch already uploaded",
		}, errorResponse)
	})

	t.Run("healthz", func(t *testing.T) {
		mock.ExpectPing()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "usage_counter_http_")
	})

	t.Run("unknown route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/logs", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
