package sportsfeed

import (
	"encoding/json"
	"time"
)

const (
	providerName       = "sportsfeed"
	defaultBaseURL     = "http://localhost:3000"
	defaultPath        = "/data/sports.json"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBody       = 512
)

// envelope is the wrapped feed shape: {"events": [...]}. Events stays raw so a
// non-array value can fall back to an empty list.
type envelope struct {
	Events json.RawMessage `json:"events"`
}
