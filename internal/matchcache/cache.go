package matchcache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/logging"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
)

const (
	DefaultTTL     = 5 * time.Minute
	DefaultTimeout = 10 * time.Second

	flightKey = "matches"
)

// Options tune a Service. Zero values fall back to the defaults.
type Options struct {
	TTL     time.Duration
	Timeout time.Duration
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Now     func() time.Time
}

// Service fronts a match provider with a TTL cache and a stale-data fallback.
type Service struct {
	provider providers.MatchProvider
	ttl      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	data      []matches.Match
	fetchedAt time.Time
	cached    bool
}

// New builds a cache service over provider.
func New(provider providers.MatchProvider, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		provider: provider,
		ttl:      opts.TTL,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		now:      opts.Now,
	}
}

// GetMatches returns cached matches while fresh, otherwise fetches from the provider.
// Fetch failures return the last cached data, however old, when any exists.
// Each caller gets its own copy; the cached entry is only replaced by a refresh.
func (s *Service) GetMatches(ctx context.Context) ([]matches.Match, error) {
	if data, ok := s.fresh(); ok {
		s.metrics.RecordCacheLookup(metrics.CacheHit)
		return cloneMatches(data), nil
	}

	// The shared fetch must outlive any single caller; callers still honor their own ctx.
	ch := s.group.DoChan(flightKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneMatches(res.Val.([]matches.Match)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ClearCache drops the cached data; the next GetMatches always reaches the provider.
func (s *Service) ClearCache() {
	s.mu.Lock()
	s.data = nil
	s.fetchedAt = time.Time{}
	s.cached = false
	s.mu.Unlock()
}

// FetchedAt reports when the cache was last filled.
func (s *Service) FetchedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt, s.cached
}

func (s *Service) fresh() ([]matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cached || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.data, true
}

func (s *Service) stale() ([]matches.Match, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.fetchedAt, s.cached
}

func (s *Service) refresh(ctx context.Context) ([]matches.Match, error) {
	// A concurrent flight may have filled the cache between the fresh check and here.
	if data, ok := s.fresh(); ok {
		s.metrics.RecordCacheLookup(metrics.CacheHit)
		return data, nil
	}
	s.metrics.RecordCacheLookup(metrics.CacheMiss)

	if s.provider == nil {
		return s.fallback(ctx, providers.ErrProviderUnavailable, false)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.provider.FetchMatches(fetchCtx)
	if err != nil {
		timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(fetchCtx.Err(), context.DeadlineExceeded)
		return s.fallback(ctx, err, timedOut)
	}
	if data == nil {
		data = []matches.Match{}
	}

	s.mu.Lock()
	s.data = data
	s.fetchedAt = s.now()
	s.cached = true
	s.mu.Unlock()

	return data, nil
}

func (s *Service) fallback(ctx context.Context, err error, timedOut bool) ([]matches.Match, error) {
	cacheErr := classify(err, timedOut)

	if data, fetchedAt, ok := s.stale(); ok {
		s.metrics.RecordCacheLookup(metrics.CacheStale)
		logging.Warn(logging.FromContext(ctx, s.logger), "fetch failed, returning stale cache",
			logging.FieldErrorCode, string(cacheErr.Code),
			logging.FieldCacheAge, s.now().Sub(fetchedAt).Milliseconds(),
			"error", err,
		)
		return data, nil
	}

	s.metrics.RecordCacheError(string(cacheErr.Code))
	logging.Error(logging.FromContext(ctx, s.logger), "failed to fetch matches", err,
		logging.FieldErrorCode, string(cacheErr.Code),
	)
	return nil, cacheErr
}

func classify(err error, timedOut bool) *Error {
	if statusErr, ok := providers.AsHTTPStatusError(err); ok {
		return httpError(statusErr.StatusCode, err)
	}
	if _, ok := providers.AsDecodeError(err); ok {
		return parseError(err)
	}
	if timedOut {
		return timeoutError(err)
	}
	return networkError(err)
}

func cloneMatches(ms []matches.Match) []matches.Match {
	out := make([]matches.Match, len(ms))
	copy(out, ms)
	return out
}
