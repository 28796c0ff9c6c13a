package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultSettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
registry {
  url          = "https://registry.example.com"
  cache_ttl    = "5m"
  max_attempts = 5
}

logging {
  level  = "debug"
  format = "json"
}
`)

	var cfg Config
	require.NoError(t, LoadSettings(path, &cfg))

	assert.Equal(t, "https://registry.example.com", cfg.RegistryURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadSettingsPartial(t *testing.T) {
	path := writeSettings(t, `
logging {
  level = "warn"
}
`)

	var cfg Config
	require.NoError(t, LoadSettings(path, &cfg))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.RegistryURL)
	assert.Zero(t, cfg.CacheTTL)
}

func TestLoadSettingsEnvInterpolation(t *testing.T) {
	t.Setenv("RECIPEKIT_TEST_REGISTRY", "https://env.example.com")
	path := writeSettings(t, `
registry {
  url = env.RECIPEKIT_TEST_REGISTRY
}
`)

	var cfg Config
	require.NoError(t, LoadSettings(path, &cfg))
	assert.Equal(t, "https://env.example.com", cfg.RegistryURL)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var cfg Config
		err := LoadSettings(filepath.Join(t.TempDir(), "absent.hcl"), &cfg)
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeSettings(t, `registry {`)
		var cfg Config
		err := LoadSettings(path, &cfg)
		assert.ErrorContains(t, err, "parsing settings file")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeSettings(t, `
registry {
  cache_ttl = "soon"
}
`)
		var cfg Config
		err := LoadSettings(path, &cfg)
		assert.ErrorContains(t, err, "invalid cache_ttl")
	})
}
