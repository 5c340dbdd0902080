package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 2 * time.Second
)

// retryingProvider wraps a MatchProvider with exponential backoff for transient failures.
type retryingProvider struct {
	inner       MatchProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	attempt := 0
	op := func() ([]matches.Match, error) {
		attempt++
		start := time.Now()
		result, err := r.inner.FetchMatches(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		if statusErr, ok := AsHTTPStatusError(err); ok && statusErr.RateLimited() {
			r.metrics.RecordRateLimit(r.name, statusErr.RetryAfter)
		}
		if !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		if attempt < r.maxAttempts {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
				"attempt", attempt, "max_attempts", r.maxAttempts, "error", err)
		}
		return nil, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	result, err := backoff.RetryWithData(op, policy)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			"attempts", attempt, "error", err)
		return nil, err
	}
	return result, nil
}

// Unwrap exposes the wrapped provider.
func (r *retryingProvider) Unwrap() MatchProvider {
	return r.inner
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if statusErr, ok := AsHTTPStatusError(err); ok {
		return statusErr.Temporary()
	}
	if _, ok := AsDecodeError(err); ok {
		return false
	}
	return true
}
