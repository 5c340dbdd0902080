package server

import (
	"log/slog"

	"github.com/preston-bernstein/live-scores-service/internal/config"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
)

// providerFactory assembles the configured feed with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.MatchProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.MatchProvider) providers.MatchProvider {
	return providers.NewRetryingProvider(
		base,
		f.logger,
		f.metrics,
		normalizeProviderName(cfg.Provider, base),
		cfg.Feed.RetryAttempts,
		cfg.Feed.RetryBackoff,
	)
}
