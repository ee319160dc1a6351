package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets the given environment variables for the duration of the test.
// An empty value clears the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load sets the expected defaults when no
// environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"LUNAR_SERVER_PORT":                "",
		"LUNAR_SERVER_LOG_LEVEL":           "",
		"LUNAR_SERVER_READ_HEADER_TIMEOUT": "",
		"LUNAR_SERVER_SHUTDOWN_TIMEOUT":    "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"LUNAR_SERVER_PORT":             "9090",
		"LUNAR_SERVER_LOG_LEVEL":        "debug",
		"LUNAR_SERVER_SHUTDOWN_TIMEOUT": "3s",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

// TestLoadFile verifies that values come from the YAML file and that the
// environment overrides them.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lunar.yaml")
	content := "server:\n  port: 7070\n  log_level: warn\n  read_header_timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	setupEnv(t, map[string]string{
		"LUNAR_SERVER_PORT":      "",
		"LUNAR_SERVER_LOG_LEVEL": "",
	})

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout)

	setupEnv(t, map[string]string{"LUNAR_SERVER_LOG_LEVEL": "error"})
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should take precedence over the file")
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that Load validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"LUNAR_SERVER_PORT":      "999999",
				"LUNAR_SERVER_LOG_LEVEL": "debug",
			},
		},
		{
			name: "Negative port number",
			envVars: map[string]string{
				"LUNAR_SERVER_PORT": "-1",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"LUNAR_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Zero shutdown timeout",
			envVars: map[string]string{
				"LUNAR_SERVER_SHUTDOWN_TIMEOUT": "0s",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
