package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xzqh/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/url_cache", cfg.CacheDir)
	assert.Equal(t, "src/region.json", cfg.Output)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, time.Second, cfg.RequestDelay())
	assert.Equal(t, time.Minute, cfg.RequestTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xzqh.toml")
	data := `
output = " out/region.json "
sqlite_path = "out/region.db"
request_delay_ms = 0

[logging]
format = "JSON"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/url_cache", cfg.CacheDir)
	assert.Equal(t, "out/region.json", cfg.Output)
	assert.Equal(t, "out/region.db", cfg.SQLitePath)
	assert.Zero(t, cfg.RequestDelay())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir = \"\"\nrequest_delay_ms = -5\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache_dir")
	assert.Contains(t, err.Error(), "request_delay_ms")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
