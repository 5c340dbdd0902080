package testutil

import (
	"context"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
)

// GoodProvider returns the provided matches with no error.
type GoodProvider struct {
	Matches []matches.Match
}

func (p GoodProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return p.Matches, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return nil, p.Err
}

// EmptyProvider returns no matches, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return []matches.Match{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return nil, providers.ErrProviderUnavailable
}

// SlowProvider blocks until ctx ends, simulating an upstream that never answers.
type SlowProvider struct{}

func (SlowProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
