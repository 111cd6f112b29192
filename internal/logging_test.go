package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	orig := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogging_FileJSON(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "app.log")

	cfg := DefaultLogConfig()
	cfg.Format = "json"
	cfg.Output = path
	closeLog, err := InitLogging(cfg)
	require.NoError(t, err)

	logger := WithComponent("render")
	logger.Info().Msg("hello")
	reqLogger := WithRequestID("req-1")
	reqLogger.Debug().Msg("hidden at info level")
	reqLogger.Warn().Msg("visible")

	require.NoError(t, closeLog())
	assert.Error(t, closeLog(), "file is already closed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"render"`)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"request_id":"req-1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestInitLogging_StderrCloseIsNoop(t *testing.T) {
	restoreLogger(t)

	closeLog, err := InitLogging(DefaultLogConfig())
	require.NoError(t, err)
	assert.NoError(t, closeLog())
	assert.NoError(t, closeLog())
}

func TestInitLogging_InvalidLevel(t *testing.T) {
	restoreLogger(t)

	cfg := DefaultLogConfig()
	cfg.Level = "loud"
	_, err := InitLogging(cfg)
	assert.Error(t, err)
}

func TestInitLogging_UnwritableOutput(t *testing.T) {
	restoreLogger(t)

	cfg := DefaultLogConfig()
	cfg.Output = t.TempDir()
	_, err := InitLogging(cfg)
	assert.Error(t, err)
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}
