package http

import (
	"net/http"

	"usage-counter/internal/ingestors"
)

// UploadBatchResponse is the body of an accepted upload.
type UploadBatchResponse struct {
	BatchID     string `json:"batchId"`
	Collection  string `json:"collection"`
	RecordCount int    `json:"recordCount"`
}

type uploadBatchHandler struct {
	uploadService ingestors.UploadService
}

func NewUploadBatchHandler(uploadService ingestors.UploadService) AppHttpHandler {
	return &uploadBatchHandler{
		uploadService: uploadService,
	}
}

// Handle processes POST /batches requests. The batch is counted asynchronously, so a
// success answers 202 with the batch id.
func (h *uploadBatchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.uploadService.UploadBatch(r.Context(), collection(r), idempotencyKey(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusAccepted, UploadBatchResponse{
		BatchID:     result.BatchID,
		Collection:  result.Collection,
		RecordCount: result.RecordCount,
	})
	return nil
}
