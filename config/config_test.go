package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RECORD_BACKEND", BackendCSV)
	t.Setenv("CSV_PATH", "/tmp/records.csv")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("USE_HTTPS", "true")

	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendCSV, cfg.Backend)
	assert.Equal(t, "/tmp/records.csv", cfg.CSVPath)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.UseHTTPS)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("UI_ADDRESS=:9000\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("UI_ADDRESS")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.UIAddress)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	chdir(t, t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// The default .env is optional
	_, err := Load()
	require.NoError(t, err)

	// A file asked for by name is not
	_, err = Load(filepath.Join(dir, "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "mssql" }, true},
		{"http without url", func(c *Config) { c.Backend = BackendHTTP; c.WorkerURL = "" }, true},
		{"csv without path", func(c *Config) { c.Backend = BackendCSV; c.CSVPath = "" }, true},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"partial oidc", func(c *Config) { c.OIDCIssuer = "https://id.example.com" }, true},
		{"full oidc", func(c *Config) {
			c.OIDCIssuer = "https://id.example.com"
			c.OIDCClientID = "id"
			c.OIDCClientSecret = "secret"
			c.OIDCCallbackURL = "http://localhost:8501/callback"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
