package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID      = "x-request-id"
	headerIdempotencyKey = "idempotency-key"
	headerCollection     = "x-collection"

	queryCollection = "collection"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

// collection reads the collection acronym from the query string, then the header.
// Empty means the configured collection.
func collection(r *http.Request) string {
	if c := strings.TrimSpace(r.URL.Query().Get(queryCollection)); c != "" {
		return c
	}
	return strings.TrimSpace(r.Header.Get(headerCollection))
}
