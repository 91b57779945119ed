package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/gobang/internal/api/apierr"
	"github.com/mcoot/gobang/internal/api/response"
	"github.com/mcoot/gobang/internal/services/players"
)

// HealthHandler reports whether the service and its store are reachable
type HealthHandler struct {
	players *players.Service
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(players *players.Service, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		players: players,
		logger:  logger,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.players.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		apierr.WriteError(w, apierr.NewUnavailableError("store unreachable"))
		return
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
