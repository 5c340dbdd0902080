package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/logging"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
)

// UnexpectedErrorMessage is surfaced when a fetch fails without a usable message.
const UnexpectedErrorMessage = "An unexpected error occurred"

// ErrNoSource is returned by FetchMatches when the store was built without a source.
var ErrNoSource = errors.New("store: match source not configured")

// MatchSource supplies matches to the store, typically a matchcache.Service.
type MatchSource interface {
	GetMatches(ctx context.Context) ([]matches.Match, error)
	ClearCache()
}

// State is a point-in-time copy of the store.
type State struct {
	Matches         []matches.Match
	FilteredMatches []matches.Match
	FilterCounts    matches.FilterCounts
	ActiveFilter    matches.FilterType
	IsLoading       bool
	Error           string
	LastUpdated     time.Time
}

// MatchStore holds the sorted match collection, its derived views and load status.
// Every mutation replaces whole fields under the lock; readers receive copies.
type MatchStore struct {
	source  MatchSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu    sync.RWMutex
	state State
	// generation invalidates in-flight fetches when Reset runs.
	generation uint64
}

// New constructs a store in its initial state.
func New(source MatchSource, logger *slog.Logger, recorder *metrics.Recorder) *MatchStore {
	return &MatchStore{
		source:  source,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
		state:   initialState(),
	}
}

func initialState() State {
	return State{
		Matches:         []matches.Match{},
		FilteredMatches: []matches.Match{},
		ActiveFilter:    matches.FilterAll,
	}
}

// FetchMatches loads matches from the source and applies them. A call made while
// another fetch is in flight returns immediately without contacting the source.
// On failure the previous collection is kept and the error message is recorded.
func (s *MatchStore) FetchMatches(ctx context.Context) error {
	if s.source == nil {
		s.mu.Lock()
		s.state.Error = errorMessage(ErrNoSource)
		s.mu.Unlock()
		logging.Warn(logging.FromContext(ctx, s.logger), "match fetch skipped", "error", ErrNoSource)
		return ErrNoSource
	}

	s.mu.Lock()
	if s.state.IsLoading {
		s.mu.Unlock()
		return nil
	}
	s.state.IsLoading = true
	s.state.Error = ""
	gen := s.generation
	s.mu.Unlock()

	start := time.Now()
	data, err := s.source.GetMatches(ctx)

	var sorted []matches.Match
	var counts matches.FilterCounts
	if err == nil {
		sorted = matches.Sort(data)
		counts = matches.CountByFilter(sorted)
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logging.Debug(logging.FromContext(ctx, s.logger), "discarding fetch result after reset")
		return err
	}
	if err != nil {
		s.state.Error = errorMessage(err)
		s.state.IsLoading = false
		s.mu.Unlock()

		s.metrics.RecordStoreFetch(time.Since(start), 0, err)
		logging.Warn(logging.FromContext(ctx, s.logger), "match fetch failed",
			"error", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		return err
	}
	s.state.Matches = sorted
	s.state.FilterCounts = counts
	s.state.FilteredMatches = matches.Filter(sorted, s.state.ActiveFilter)
	s.state.IsLoading = false
	s.state.Error = ""
	s.state.LastUpdated = s.now()
	s.mu.Unlock()

	s.metrics.RecordStoreFetch(time.Since(start), len(sorted), nil)
	logging.Debug(logging.FromContext(ctx, s.logger), "matches applied",
		logging.FieldCount, len(sorted),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// SetActiveFilter switches the active filter and recomputes the filtered view from
// the current collection. Counts are unaffected.
func (s *MatchStore) SetActiveFilter(ft matches.FilterType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveFilter = ft
	s.state.FilteredMatches = matches.Filter(s.state.Matches, ft)
}

// Reset clears the source cache and restores the initial state.
func (s *MatchStore) Reset() {
	if s.source != nil {
		s.source.ClearCache()
	}
	s.mu.Lock()
	s.state = initialState()
	s.generation++
	s.mu.Unlock()
}

// State returns a copy of the full store state.
func (s *MatchStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Matches = cloneMatches(s.state.Matches)
	st.FilteredMatches = cloneMatches(s.state.FilteredMatches)
	return st
}

// Matches returns the full sorted collection.
func (s *MatchStore) Matches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMatches(s.state.Matches)
}

// FilteredMatches returns the collection narrowed to the active filter.
func (s *MatchStore) FilteredMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMatches(s.state.FilteredMatches)
}

// FilterCounts returns per-filter totals over the full collection.
func (s *MatchStore) FilterCounts() matches.FilterCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.FilterCounts
}

// ActiveFilter returns the filter currently applied to FilteredMatches.
func (s *MatchStore) ActiveFilter() matches.FilterType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveFilter
}

// IsLoading reports whether a fetch is in flight.
func (s *MatchStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

// Err returns the last fetch error message, or "" when the last fetch succeeded.
func (s *MatchStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Error
}

// Find looks up a match by ID across the full collection.
func (s *MatchStore) Find(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return matches.FindByID(s.state.Matches, id)
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return UnexpectedErrorMessage
	}
	return err.Error()
}

func cloneMatches(ms []matches.Match) []matches.Match {
	out := make([]matches.Match, len(ms))
	copy(out, ms)
	return out
}
