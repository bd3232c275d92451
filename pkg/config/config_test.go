package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translit/pkg/config"
	"github.com/dmitrymomot/translit/pkg/cyrillic"
)

// clearEnv resets every variable the config reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRANSLITERATION_SYSTEM", "TRANSLIT_USE_ICONV", "TRANSLIT_CONFIG",
		"HTTP_ADDR", "HTTP_SHUTDOWN_TIMEOUT", "HTTP_REQUEST_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"SENTRY_DSN", "SENTRY_ENVIRONMENT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translit.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, cyrillic.Passport2013, cfg.Translit.System)
	assert.False(t, cfg.Translit.UseIconv)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.File)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSLITERATION_SYSTEM", "ISO9")
	t.Setenv("TRANSLIT_USE_ICONV", "true")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, cyrillic.ISO9, cfg.Translit.System)
	assert.True(t, cfg.Translit.UseIconv)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
translit:
  transliteration_system: bgn_pcgn
  use_iconv: true
server:
  address: ":7000"
  shutdown_timeout: 5s
log:
  format: text
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cyrillic.BGNPCGN, cfg.Translit.System)
	assert.True(t, cfg.Translit.UseIconv)
	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, path, cfg.File)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "translit:\n  transliteration_system: bgn_pcgn\nserver:\n  address: \":7000\"\n")
	t.Setenv("TRANSLITERATION_SYSTEM", "iso9")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cyrillic.ISO9, cfg.Translit.System)
	assert.Equal(t, ":7000", cfg.Server.Address)
}

func TestConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "translit:\n  transliteration_system: iso9\n")
	t.Setenv("TRANSLIT_CONFIG", path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, cyrillic.ISO9, cfg.Translit.System)
	assert.Equal(t, path, cfg.File)
}

func TestUnknownSystemIsAccepted(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSLITERATION_SYSTEM", "gost")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Translit.System.Valid())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.ErrorIs(t, err, config.ErrReadFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "translit: [unclosed")
		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrParseFile)
	})

	t.Run("invalid env value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TRANSLIT_USE_ICONV", "maybe")
		_, err := config.Load("")
		require.ErrorIs(t, err, config.ErrParseEnv)
	})

	t.Run("non-positive shutdown timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "0s")
		_, err := config.Load("")
		require.ErrorIs(t, err, config.ErrInvalidShutdownTimeout)
	})

	t.Run("non-positive request timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_REQUEST_TIMEOUT", "-1s")
		_, err := config.Load("")
		require.ErrorIs(t, err, config.ErrInvalidRequestTimeout)
	})

	t.Run("must load panics", func(t *testing.T) {
		clearEnv(t)
		assert.Panics(t, func() {
			config.MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
