package providers

import (
	"context"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
)

// MatchProvider fetches the full match collection from an upstream feed.
// Implementations must honor ctx cancellation and deadlines.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]matches.Match, error)
}

// ProviderFunc adapts a function to MatchProvider.
type ProviderFunc func(ctx context.Context) ([]matches.Match, error)

// FetchMatches calls f(ctx).
func (f ProviderFunc) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return f(ctx)
}
