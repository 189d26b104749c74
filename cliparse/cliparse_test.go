// cliparse/cliparse_test.go
package cliparse

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv blanks every variable ParseFlags reads so the host
// environment cannot leak into a test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	EnvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { EnvFile = ".env" })
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 3318, cfg.Port)
	assert.Equal(t, "feature_voting.db", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "/tmp/votes.db")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://example.com")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/votes.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.CORSOrigins)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-log-level", "debug", "-cors-origins", "https://a.example"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORSOrigins)
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	EnvFile = filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(EnvFile, []byte("PORT=7001\nLOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "non-numeric PORT", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", args: []string{"-p", "70000"}},
		{name: "unknown database type", args: []string{"-t", "mysql"}},
		{name: "empty database URL", args: []string{"-d", " "}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "bad log format", args: []string{"-log-format", "xml"}},
		{name: "no CORS origins", args: []string{"-cors-origins", ""}},
		{name: "unknown flag", args: []string{"--nope"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tc.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_NormalizesDatabaseType(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{"-t", "Postgres", "-d", "postgres://localhost/votes"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DatabaseType)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "feature_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(7), entry["feature_id"])
}
