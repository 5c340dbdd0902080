package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/live-scores-service/internal/config"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
	"github.com/preston-bernstein/live-scores-service/internal/providers/fixture"
	"github.com/preston-bernstein/live-scores-service/internal/providers/sportsfeed"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderSportsFeed:
		return sportsfeed.NewClient(sportsfeed.Config{
			BaseURL: cfg.Feed.BaseURL,
			Path:    cfg.Feed.Path,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name for metrics and logs,
// deriving one from the instance type when none is configured.
func normalizeProviderName(raw string, provider providers.MatchProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
