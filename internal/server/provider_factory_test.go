package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/config"
	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
	"github.com/preston-bernstein/live-scores-service/internal/teststubs"
)

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	ms, err := prov.FetchMatches(context.Background())
	if err != nil || len(ms) == 0 {
		t.Fatalf("expected fixture matches, got %d err=%v", len(ms), err)
	}
}

func TestProviderFactoryWrapUsesConfiguredRetries(t *testing.T) {
	stub := &teststubs.StubProvider{Err: errors.New("transient")}
	cfg := config.Config{Feed: config.FeedConfig{RetryAttempts: 2, RetryBackoff: time.Millisecond}}

	prov := newProviderFactory(nil, nil).wrap(cfg, stub)
	if _, err := prov.FetchMatches(context.Background()); err == nil {
		t.Fatalf("expected error after retries")
	}
	if got := stub.Calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestProviderFactoryWrapKeepsResults(t *testing.T) {
	want := []matches.Match{{ID: "a"}}
	prov := newProviderFactory(nil, nil).wrap(config.Config{}, providers.ProviderFunc(func(context.Context) ([]matches.Match, error) {
		return want, nil
	}))
	got, err := prov.FetchMatches(context.Background())
	if err != nil || len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}
