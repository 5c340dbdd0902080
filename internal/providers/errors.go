package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// HTTPStatusError captures a non-success response from an upstream feed.
type HTTPStatusError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Body       string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.providerName(), e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// RateLimited reports whether the upstream rejected the request for quota reasons.
func (e *HTTPStatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Temporary reports whether retrying the same request may succeed.
func (e *HTTPStatusError) Temporary() bool {
	return e.RateLimited() || e.StatusCode >= http.StatusInternalServerError
}

func (e *HTTPStatusError) providerName() string {
	if e.Provider == "" {
		return "provider"
	}
	return e.Provider
}

// DecodeError wraps a malformed response body.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	name := e.Provider
	if name == "" {
		name = "provider"
	}
	return fmt.Sprintf("%s: decode response: %v", name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsHTTPStatusError attempts to unwrap an error into an HTTPStatusError.
func AsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}
