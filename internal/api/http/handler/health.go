package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse reports service status.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health serves the root and health endpoints.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Root greets API clients.
// @Summary Welcome
// @Tags Core
// @Produce json
// @Success 200 {object} response.Message
// @Router / [get]
func (h *Health) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Message{Message: "Welcome to the edupost API"})
}

// Health reports whether the store is reachable.
// @Summary Health check
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *Health) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: store ping failed", "error", err.Error())
		handleError(w, h.logger, apierrors.NewErrServiceUnavailable(err))
		return
	}

	response.JSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
