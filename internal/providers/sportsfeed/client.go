package sportsfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/live-scores-service/internal/domain/matches"
	"github.com/preston-bernstein/live-scores-service/internal/providers"
)

// Config controls how the client reaches the sports feed.
type Config struct {
	BaseURL    string
	Path       string
	HTTPClient *http.Client
}

// Client fetches the match collection from a static JSON feed.
type Client struct {
	url        string
	httpClient httpDoer
}

// NewClient constructs a feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeBaseURL(cfg.BaseURL) + normalizePath(cfg.Path),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// URL returns the resolved feed location.
func (c *Client) URL() string {
	return c.url
}

// FetchMatches issues a single GET against the feed. Deadlines come from ctx.
func (c *Client) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.HTTPStatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", providerName, err)
	}
	return decodeMatches(body)
}

// decodeMatches accepts a bare array or an {"events": [...]} envelope. Any other
// well-formed JSON value yields an empty collection.
func decodeMatches(body []byte) ([]matches.Match, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &providers.DecodeError{Provider: providerName, Err: err}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []matches.Match{}, nil
	}

	switch trimmed[0] {
	case '[':
		return decodeList(trimmed)
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, &providers.DecodeError{Provider: providerName, Err: err}
		}
		events := bytes.TrimSpace(env.Events)
		if len(events) == 0 || events[0] != '[' {
			return []matches.Match{}, nil
		}
		return decodeList(events)
	default:
		return []matches.Match{}, nil
	}
}

func decodeList(raw []byte) ([]matches.Match, error) {
	var list []matches.Match
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &providers.DecodeError{Provider: providerName, Err: err}
	}
	return list, nil
}
