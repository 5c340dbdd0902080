package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/logging"
	"github.com/preston-bernstein/live-scores-service/internal/poller"
	"github.com/preston-bernstein/live-scores-service/internal/store"
)

// MatchStore is the slice of store.MatchStore the HTTP layer drives.
type MatchStore interface {
	State() store.State
	SetActiveFilter(ft matches.FilterType)
	Find(id string) (matches.Match, bool)
	FetchMatches(ctx context.Context) error
	Reset()
}

// Handler wires HTTP routes to the match store.
type Handler struct {
	store    MatchStore
	loc      *time.Location
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. Kickoff times are rendered in loc (UTC when nil).
func NewHandler(s MatchStore, loc *time.Location, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		store:    s,
		loc:      loc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Matches returns the filtered, sorted collection with counts and load status.
// A filter query parameter switches the active filter first.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	if raw := strings.TrimSpace(r.URL.Query().Get("filter")); raw != "" {
		ft, err := matches.ParseFilterType(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid filter (expected all, result, live or upcoming)", logger)
			return
		}
		h.store.SetActiveFilter(ft)
	}

	h.warm(r)
	st := h.store.State()
	logging.Info(logger, "served matches",
		logging.FieldFilter, string(st.ActiveFilter),
		logging.FieldCount, len(st.FilteredMatches),
	)
	writeJSON(w, nethttp.StatusOK, newMatchesResponse(st, h.loc), logger)
}

// Counts returns per-filter totals over the full collection.
func (h *Handler) Counts(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	h.warm(r)
	writeJSON(w, nethttp.StatusOK, h.store.State().FilterCounts, h.logger)
}

// Filters returns the filter buckets in display order with their counts.
func (h *Handler) Filters(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	h.warm(r)
	writeJSON(w, nethttp.StatusOK, map[string]any{"filters": newFilterViews(h.store.State())}, h.logger)
}

// MatchByID returns a specific match if present, regardless of the active filter.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	h.warm(r)
	m, ok := h.store.Find(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, newMatchView(m, h.loc), h.logger)
}

// warm pulls matches on demand when the store has never loaded anything.
func (h *Handler) warm(r *nethttp.Request) {
	st := h.store.State()
	if !st.LastUpdated.IsZero() || st.IsLoading || st.Error != "" {
		return
	}
	if err := h.store.FetchMatches(r.Context()); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "on-demand fetch failed", "error", err)
	}
}
