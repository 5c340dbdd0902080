package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/live-scores-service/internal/http/handlers"
	"github.com/preston-bernstein/live-scores-service/internal/http/middleware"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
)

// RouterConfig holds what the router wraps around the handlers.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a ServeMux and applies the middleware chain.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	mux := nethttp.NewServeMux()
	h := cfg.Handler
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/matches", h.Matches)
	mux.HandleFunc("/matches/counts", h.Counts)
	mux.HandleFunc("/matches/filters", h.Filters)
	mux.HandleFunc("/matches/{id}", h.MatchByID)
	if cfg.Admin != nil {
		mux.HandleFunc("/admin/refresh", cfg.Admin.Refresh)
		mux.HandleFunc("/admin/reset", cfg.Admin.Reset)
	}

	var handler nethttp.Handler = mux
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	return middleware.LoggingMiddleware(cfg.Logger, cfg.Metrics, handler)
}
