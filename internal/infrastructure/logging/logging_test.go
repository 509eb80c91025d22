package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/csvjoin/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		assert.NilError(t, err)
		assert.Equal(t, got, tt.want)
	}

	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestNewConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewConsoleHandler(&buf, config.LogConfig{Level: "warn", Format: "json"})
	assert.NilError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("table", "orders"))

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, `"table":"orders"`), out)

	_, err = NewConsoleHandler(&buf, config.LogConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	assert.Assert(t, multi.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(multi).With("join_id", "abc")
	logger.Debug("merge step")
	logger.Error("join failed")

	assert.Assert(t, strings.Contains(debugBuf.String(), "merge step"))
	assert.Assert(t, strings.Contains(debugBuf.String(), "join_id=abc"))
	assert.Assert(t, !strings.Contains(errorBuf.String(), "merge step"))
	assert.Assert(t, strings.Contains(errorBuf.String(), "join failed"))
}

func TestSetupLoggerConsoleOnly(t *testing.T) {
	logger, closeFn, err := SetupLogger(config.LogConfig{Level: "info", Format: "text"})
	assert.NilError(t, err)
	assert.Assert(t, logger != nil)
	closeFn()

	_, _, err = SetupLogger(config.LogConfig{Level: "nope"})
	assert.ErrorContains(t, err, "unknown log level")
}
