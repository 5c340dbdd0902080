package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/live-scores-service/internal/http/handlers"
	"github.com/preston-bernstein/live-scores-service/internal/store"
	"github.com/preston-bernstein/live-scores-service/internal/testutil"
	"github.com/preston-bernstein/live-scores-service/internal/teststubs"
)

func newTestRouter(t *testing.T, token string) (http.Handler, *teststubs.StubMatchSource) {
	t.Helper()
	src := &teststubs.StubMatchSource{}
	src.Set(testutil.ScenarioMatches(), nil)
	ms := store.New(src, nil, nil)
	if err := ms.FetchMatches(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return NewRouter(RouterConfig{
		Handler: handlers.NewHandler(ms, nil, nil, nil),
		Admin:   handlers.NewAdminHandler(ms, token, nil),
	}), src
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router, _ := newTestRouter(t, "")

	cases := map[string]int{
		"/health":          http.StatusOK,
		"/ready":           http.StatusOK,
		"/matches":         http.StatusOK,
		"/matches/counts":  http.StatusOK,
		"/matches/filters": http.StatusOK,
		"/matches/live":    http.StatusOK,
		"/matches/foo":     http.StatusNotFound, // known route with missing match
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s expected request id header", path)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterAdminRoutes(t *testing.T) {
	router, src := newTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected reset to succeed, got %d", rr.Code)
	}
	if src.Clears.Load() != 1 {
		t.Fatalf("expected cache cleared by reset")
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
}

func TestRouterWithoutAdminHandler(t *testing.T) {
	ms := store.New(&teststubs.StubMatchSource{}, nil, nil)
	router := NewRouter(RouterConfig{Handler: handlers.NewHandler(ms, nil, nil, nil)})

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected admin routes absent, got %d", rr.Code)
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	src := &teststubs.StubMatchSource{}
	ms := store.New(src, nil, nil)
	router := NewRouter(RouterConfig{
		Handler:     handlers.NewHandler(ms, nil, nil, nil),
		CORSOrigins: []string{"https://scores.example"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://scores.example")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://scores.example" {
		t.Fatalf("expected cors header, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
