package adapter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestSetupLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "popcorn.log")

	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "debug", Format: "json", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("search cycle", "query", "batman")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"query":"batman"`)
}

func TestNewHandler_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, &LoggingConfig{Level: "info", Format: "text"}))

	logger.Debug("hidden")
	logger.Info("shown", "id", "tt1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "id=tt1")
}
