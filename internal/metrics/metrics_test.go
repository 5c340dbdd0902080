package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("sportsfeed", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("sportsfeed", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("sportsfeed"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("sportsfeed"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("sportsfeed"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("sportsfeed")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("sportsfeed", 5*time.Second)
	rec.RecordRateLimit("sportsfeed", 0)

	if got := rec.RateLimitHits("sportsfeed"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("sportsfeed"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksCacheLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup(CacheMiss)
	rec.RecordCacheLookup(CacheHit)
	rec.RecordCacheLookup(CacheHit)
	rec.RecordCacheLookup(CacheStale)
	rec.RecordCacheError("NETWORK_ERROR")

	snap := rec.Cache()
	if snap.Hits != 2 || snap.Misses != 1 || snap.Stale != 1 {
		t.Fatalf("unexpected cache snapshot %+v", snap)
	}
	if snap.Errors["NETWORK_ERROR"] != 1 {
		t.Fatalf("expected one network error, got %+v", snap.Errors)
	}

	snap.Errors["NETWORK_ERROR"] = 99
	if rec.Cache().Errors["NETWORK_ERROR"] != 1 {
		t.Fatal("expected cache snapshot to be a copy")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", time.Millisecond, nil)
	rec.RecordRateLimit("p", time.Second)
	rec.RecordCacheLookup(CacheHit)
	rec.RecordCacheError("TIMEOUT_ERROR")
	rec.RecordHTTPRequest("GET", "/matches", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	rec.RecordStoreFetch(time.Millisecond, 3, nil)

	if rec.ProviderCalls("p") != 0 || rec.Cache().Hits != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
