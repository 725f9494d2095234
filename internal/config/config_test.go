package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_BACKEND", "DATABASE_URL",
	"METRICS_ENABLED", "METRICS_TOKEN", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func noFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noFile(t))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:            "8000",
		LogLevel:        "info",
		LogFormat:       "json",
		CatalogBackend:  BackendMemory,
		MetricsEnabled:  true,
		ShutdownTimeout: 10 * time.Second,
	}, cfg)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_BACKEND", BackendPostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/sneakpeak")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_TOKEN", "tok")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(noFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendPostgres, cfg.CatalogBackend)
	assert.Equal(t, "postgres://localhost/sneakpeak", cfg.DatabaseURL)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "tok", cfg.MetricsToken)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=1234\nLOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port, "environment wins over the file")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"CATALOG_BACKEND": "redis"}},
		{"postgres without dsn", map[string]string{"CATALOG_BACKEND": BackendPostgres}},
		{"bad bool", map[string]string{"METRICS_ENABLED": "sometimes"}},
		{"bad duration", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{"zero duration", map[string]string{"SHUTDOWN_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(noFile(t))
			require.Error(t, err)
		})
	}
}
