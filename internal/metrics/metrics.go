package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
	stale  int
	errors map[string]int
}

// Recorder captures lightweight, in-memory metrics and forwards them to OpenTelemetry when configured.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	cache cacheStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		cache: cacheStats{errors: make(map[string]int)},
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCacheLookup counts a cache read by outcome (hit, miss, stale).
func (r *Recorder) RecordCacheLookup(outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	switch outcome {
	case CacheHit:
		r.cache.hits++
	case CacheMiss:
		r.cache.misses++
	case CacheStale:
		r.cache.stale++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(outcome)
	}
}

// RecordCacheError counts a fetch failure that could not be served from cache.
func (r *Recorder) RecordCacheError(code string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cache.errors[code]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheError(code)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CacheSnapshot is a copy of the cache lookup counters.
type CacheSnapshot struct {
	Hits   int
	Misses int
	Stale  int
	Errors map[string]int
}

// Cache returns the current cache counters.
func (r *Recorder) Cache() CacheSnapshot {
	if r == nil {
		return CacheSnapshot{Errors: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := make(map[string]int, len(r.cache.errors))
	for code, n := range r.cache.errors {
		errs[code] = n
	}
	return CacheSnapshot{
		Hits:   r.cache.hits,
		Misses: r.cache.misses,
		Stale:  r.cache.stale,
		Errors: errs,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordStoreFetch tracks a store fetch-and-apply cycle and the number of matches applied.
func (r *Recorder) RecordStoreFetch(duration time.Duration, count int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordStoreFetch(duration, count, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
