package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/live-scores-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Format: "text", Writer: &buf})
	return logger, &buf
}
