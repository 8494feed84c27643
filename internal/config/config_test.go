package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pokedex/browser/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 20, cfg.PokeAPI.PageSize)
	assert.Equal(t, 30*time.Second, cfg.PokeAPI.RequestTimeout())
	assert.Equal(t, 0, cfg.PokeAPI.MaxRequestsPerSecond)
	assert.Empty(t, cfg.PokeAPI.Proxies)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Equal(t, 44, cfg.UI.CardWidth)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokedex.yaml")
	content := []byte(`
pokeapi:
  base_url: http://localhost:9999/api/v2
  max_requests_per_second: 5
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 5, cfg.PokeAPI.MaxRequestsPerSecond)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "empty base url", mutate: func(c *config.Config) { c.PokeAPI.BaseURL = "" }},
		{name: "zero page size", mutate: func(c *config.Config) { c.PokeAPI.PageSize = 0 }},
		{name: "zero timeout", mutate: func(c *config.Config) { c.PokeAPI.Timeout = 0 }},
		{name: "negative rate", mutate: func(c *config.Config) { c.PokeAPI.MaxRequestsPerSecond = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PokeAPI: config.PokeAPIConfig{
				BaseURL:  "http://example.test",
				Timeout:  1,
				PageSize: 20,
			}}
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
