package http

import (
	"context"
	"net/http"
	"time"

	"usage-counter/internal/shared/svcerrors"
)

const (
	codeHealthCheckFailed = "HTTP_9000"

	healthCheckTimeout = 2 * time.Second
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) AppHttpHandler {
	return &healthHandler{db: db}
}

// Handle processes GET /healthz: the counter database must answer a ping.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		svcErr := svcerrors.NewInternalError(codeHealthCheckFailed, err)
		svcErr.HttpStatusCode = http.StatusServiceUnavailable
		return svcErr
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}
