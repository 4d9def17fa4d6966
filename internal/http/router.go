package http

import (
	"net/http"

	"usage-counter/internal/ingestors"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(uploadService ingestors.UploadService, db Pinger, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	uploadBatchHandler := NewUploadBatchHandler(uploadService)
	healthHandler := NewHealthHandler(db)

	// Routes
	router.Post("/batches", errorHandlingAdapter(uploadBatchHandler))
	router.Get("/healthz", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
