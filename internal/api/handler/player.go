package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/gobang/internal/api/apierr"
	"github.com/mcoot/gobang/internal/api/request"
	"github.com/mcoot/gobang/internal/api/response"
	"github.com/mcoot/gobang/internal/services/players"
)

// PlayerHandler handles player registration, score submission and lookup
type PlayerHandler struct {
	players *players.Service
	logger  *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *players.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		players: players,
		logger:  logger,
	}
}

// Register handles POST /register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.Register(r.Context(), req.Username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.WritePlayer(w, http.StatusCreated, player)
}

// SubmitScore handles POST /score
func (h *PlayerHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	// Integer scores stay exact instead of passing through float64
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req request.ScoreRequest
	if err := dec.Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.SubmitScore(r.Context(), req.Username, req.Score)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.WritePlayer(w, http.StatusOK, player)
}

// Get handles GET /player/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	// The router matches on the escaped path, so the segment arrives encoded
	username, err := url.PathUnescape(mux.Vars(r)["username"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid username in path"))
		return
	}

	player, err := h.players.GetPlayer(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.WritePlayer(w, http.StatusOK, player)
}

// writeError logs unexpected failures before mapping them to a response.
// Client errors are returned as-is without logging.
func (h *PlayerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("player request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	apierr.WriteError(w, err)
}
