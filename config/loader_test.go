package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FATTURAPA_PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fatturapa.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadAppConfig_DefaultsWhenMissing tests that no config file means built-in defaults
func TestLoadAppConfig_DefaultsWhenMissing(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, cfg, Config)
}

// TestLoadAppConfig_SearchPath tests that config/fatturapa.yml is found without an explicit path
func TestLoadAppConfig_SearchPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	writeConfig(t, filepath.Join(dir, "config"), "server:\n  port: 9000\n")
	chdir(t, dir)

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

// TestLoadAppConfig_Override tests that YAML values replace defaults section by section
func TestLoadAppConfig_Override(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), `
issuer:
  vatCode: "09876543210"
  taxRegime: RF19
  address:
    city: Milano
transmitter:
  progressive: A0001
logging:
  level: debug
  format: json
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "09876543210", cfg.Issuer.VATCode)
	assert.Equal(t, "RF19", cfg.Issuer.TaxRegime)
	assert.Equal(t, "Milano", cfg.Issuer.Address.City)
	assert.Equal(t, "RM", cfg.Issuer.Address.Province, "unset keys keep their default")
	assert.Equal(t, "A0001", cfg.Transmitter.Progressive)
	assert.Equal(t, "0000000", cfg.Transmitter.RecipientCode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 16181, cfg.Server.Port)
}

// TestLoadAppConfig_EnvOverride tests environment variables taking precedence over the file
func TestLoadAppConfig_EnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "server:\n  port: 9000\nlogging:\n  level: info\n")
	t.Setenv("FATTURAPA_PORT", "9100")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadAppConfig_BadEnvPort(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("FATTURAPA_PORT", "http")

	_, err := LoadAppConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FATTURAPA_PORT")
}

// TestLoadAppConfig_ExplicitMissing tests that a named but absent file is an error
func TestLoadAppConfig_ExplicitMissing(t *testing.T) {
	clearEnv(t)

	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoConfig))
}

// TestLoadAppConfig_InvalidYAML tests error handling for invalid YAML
func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "invalid: yaml: content: [[[")

	_, err := LoadAppConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

// TestLoadAppConfig_ValidationFailure tests that struct tags reject bad identities
func TestLoadAppConfig_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "tax regime prefix", content: "issuer:\n  taxRegime: XX01\n"},
		{name: "recipient code length", content: "transmitter:\n  recipientCode: \"123\"\n"},
		{name: "port range", content: "server:\n  port: 70000\n"},
		{name: "log format", content: "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := LoadAppConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestAppConfig_LogConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Output = "stdout"

	lc := cfg.LogConfig()
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, "stdout", lc.Output)
	assert.NotEmpty(t, lc.TimeFormat)
}

// TestLoadAppConfig_UnreadableSearchPath tests that a config file found on the
// search path but not readable is an error, not a silent fallback to defaults
func TestLoadAppConfig_UnreadableSearchPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "fatturapa.yml"), 0o755))
	chdir(t, dir)

	_, err := LoadAppConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config fatturapa.yml")
	assert.False(t, errors.Is(err, ErrNoConfig))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
