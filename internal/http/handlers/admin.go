package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/live-scores-service/internal/http/requestutil"
	"github.com/preston-bernstein/live-scores-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	store  MatchStore
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(s MatchStore, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  s,
		token:  token,
		logger: logger,
	}
}

// Refresh forces a fetch-and-apply cycle. It is a no-op while another fetch is in flight.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	if err := h.store.FetchMatches(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("error", err))
		writeError(w, r, http.StatusBadGateway, err.Error(), logger)
		return
	}

	st := h.store.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"count":        len(st.Matches),
		"filterCounts": st.FilterCounts,
	}, logger)
	logging.Info(logger, "admin refresh complete", slog.Int(logging.FieldCount, len(st.Matches)))
}

// Reset clears the cache and restores the store to its initial state.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	h.store.Reset()
	logger := loggerFromContext(r, h.logger)
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"}, logger)
	logging.Info(logger, "admin reset complete")
}

func (h *AdminHandler) guard(w http.ResponseWriter, r *http.Request) bool {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return false
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return false
	}
	return true
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
