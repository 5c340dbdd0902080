package sportsfeed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/providers"
)

const feedArray = `[
	{"id": "m1", "status": {"code": 100, "type": "inprogress"}, "liveStatus": "45'", "timestamp": 5},
	{"id": "m2", "status": {"code": 100, "type": "finished"}, "liveStatus": "FT", "timestamp": 10}
]`

func respond(status int, body string) roundTripperFunc {
	return func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	}
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchMatchesHitsFeedPath(t *testing.T) {
	var capturedPath, capturedMethod string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedMethod = req.Method
		return respond(http.StatusOK, feedArray)(req)
	})

	got, err := newTestClient(rt).FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/data/sports.json" || capturedMethod != http.MethodGet {
		t.Fatalf("unexpected request %s %s", capturedMethod, capturedPath)
	}
	if len(got) != 2 || got[0].ID != "m1" || got[1].LiveStatus != "FT" {
		t.Fatalf("unexpected matches %+v", got)
	}
}

func TestFetchMatchesAcceptsEventsEnvelope(t *testing.T) {
	body := `{"events": ` + feedArray + `}`
	got, err := newTestClient(respond(http.StatusOK, body)).FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches from envelope, got %d", len(got))
	}
}

func TestFetchMatchesDefaultsToEmpty(t *testing.T) {
	bodies := []string{
		`{}`, `{"other": []}`, `null`, `42`, `"text"`,
		`{"events": 5}`, `{"events": {}}`, `{"events": "x"}`, `{"events": null}`, `{"events": true}`,
	}
	for _, body := range bodies {
		got, err := newTestClient(respond(http.StatusOK, body)).FetchMatches(context.Background())
		if err != nil {
			t.Fatalf("body %s: expected no error, got %v", body, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("body %s: expected empty non-nil slice, got %+v", body, got)
		}
	}
}

func TestFetchMatchesHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, _ := respond(http.StatusTooManyRequests, "slow down")(req)
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := newTestClient(rt).FetchMatches(context.Background())
	statusErr, ok := providers.AsHTTPStatusError(err)
	if !ok {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests || statusErr.RetryAfter != 7*time.Second || statusErr.Body != "slow down" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchMatchesHandlesDecodeError(t *testing.T) {
	_, err := newTestClient(respond(http.StatusOK, "{bad json")).FetchMatches(context.Background())
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFetchMatchesPropagatesTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, boom
	})

	_, err := newTestClient(rt).FetchMatches(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchMatchesHonorsContextDeadline(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTestClient(rt).FetchMatches(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.URL() != "http://localhost:3000/data/sports.json" {
		t.Fatalf("unexpected default url %s", c.URL())
	}
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok || httpClient.Timeout == 0 {
		t.Fatalf("expected default http client with timeout")
	}

	custom := NewClient(Config{BaseURL: "https://feed.example", Path: "scores.json"})
	if custom.URL() != "https://feed.example/scores.json" {
		t.Fatalf("unexpected custom url %s", custom.URL())
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
