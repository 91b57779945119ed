package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/mcoot/gobang/internal/api/apierr"
	"github.com/mcoot/gobang/internal/api/handler"
	"github.com/mcoot/gobang/internal/api/middleware"
	"github.com/mcoot/gobang/internal/metrics"
	"github.com/mcoot/gobang/internal/services/players"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *players.Service

	// AllowedOrigins lists CORS origins; empty means any origin
	AllowedOrigins []string

	// Optional: request metrics middleware and the /metrics exposition handler
	HTTPMetrics    *metrics.HTTP
	MetricsHandler http.Handler
}

// NewRouter creates a new API router with all routes configured.
// The returned handler applies CORS headers to every response.
func NewRouter(cfg RouterConfig) http.Handler {
	// Route on the escaped path so a %2F inside a username stays in one segment
	r := mux.NewRouter().UseEncodedPath()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.PlayerService, cfg.Logger)

	// Common middleware, outermost first
	chain := []mux.MiddlewareFunc{
		middleware.Recovery(cfg.Logger),
		middleware.Logging(cfg.Logger),
	}
	if cfg.HTTPMetrics != nil {
		chain = append(chain, cfg.HTTPMetrics.Middleware)
	}
	r.Use(chain...)

	// Player routes
	r.HandleFunc("/register", playerHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/score", playerHandler.SubmitScore).Methods(http.MethodPost)
	r.HandleFunc("/player/{username}", playerHandler.Get).Methods(http.MethodGet)

	// Operational routes
	r.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(http.MethodGet)
	}

	// mux does not run middleware for these, so apply the chain by hand
	r.NotFoundHandler = wrap(chain, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	}))
	r.MethodNotAllowedHandler = wrap(chain, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	}))

	return withCORS(cfg.AllowedOrigins, r)
}

func wrap(chain []mux.MiddlewareFunc, h http.Handler) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

// withCORS applies rs/cors. With a wildcard origin every response carries
// Access-Control-Allow-Origin, including requests sent without an Origin header.
func withCORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	h := c.Handler(next)
	if !slices.Contains(origins, "*") {
		return h
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Origin") == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		h.ServeHTTP(w, r)
	})
}
