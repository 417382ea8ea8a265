package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"credit-approval/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LoggerConfig{Level: "info", Encoding: "json"}))

	logger.Debug("hidden")
	logger.InfoContext(context.Background(), "loan issued", "loanID", int64(7))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loan issued", entry["msg"])
	assert.Equal(t, float64(7), entry["loanID"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LoggerConfig{Level: "debug", Encoding: "text"}))

	logger.Debug("scoring customer", "customerID", 3)

	assert.Contains(t, buf.String(), "msg=\"scoring customer\"")
	assert.Contains(t, buf.String(), "customerID=3")
}
