package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchProvider.
// When Block is set, each call waits for it to be closed or for ctx to end.
type StubProvider struct {
	Matches []matches.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
	Block   chan struct{}
}

// FetchMatches returns configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Matches, s.Err
}

// StubMatchSource is a test double for the store's match source.
type StubMatchSource struct {
	mu      sync.Mutex
	matches []matches.Match
	err     error

	Calls   atomic.Int32
	Clears  atomic.Int32
	Started chan struct{}
	Release chan struct{}
}

// Set replaces the canned response.
func (s *StubMatchSource) Set(ms []matches.Match, err error) {
	s.mu.Lock()
	s.matches = ms
	s.err = err
	s.mu.Unlock()
}

// GetMatches returns the canned response. Started is signalled once per call and
// Release, when set, gates the return.
func (s *StubMatchSource) GetMatches(ctx context.Context) ([]matches.Match, error) {
	s.Calls.Add(1)
	if s.Started != nil {
		select {
		case s.Started <- struct{}{}:
		default:
		}
	}
	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches, s.err
}

// ClearCache counts cache resets.
func (s *StubMatchSource) ClearCache() {
	s.Clears.Add(1)
}
