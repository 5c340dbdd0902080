package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/live-scores-service/internal/config"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
	"github.com/preston-bernstein/live-scores-service/internal/testutil"
)

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics server on configured port, got %q", srv.Addr())
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithMetrics(cfg, nil, testutil.EmptyProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	srv := newServerWithMetrics(testConfig(), nil, testutil.EmptyProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithMetrics(cfg, nil, testutil.GoodProvider{Matches: testutil.ScenarioMatches()}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no metrics shutdown for injected recorder")
	}

	if _, err := srv.cache.GetMatches(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := srv.cache.GetMatches(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := rec.Cache()
	if snap.Misses != 1 || snap.Hits != 1 {
		t.Fatalf("expected one miss then one hit, got %+v", snap)
	}
	if rec.ProviderCalls("fixture") != 1 {
		t.Fatalf("expected provider attempt recorded under configured name, got %d", rec.ProviderCalls("fixture"))
	}
}
