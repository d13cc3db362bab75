package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
window:
  width: 800
  title: farm
bloom:
  enabled: false
  passes: -4
resources:
  root: /srv/farm
  hot_reload: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 960, cfg.Window.Height)
	assert.Equal(t, "farm", cfg.Window.Title)
	assert.False(t, cfg.Bloom.Enabled)
	assert.Equal(t, 0, cfg.Bloom.Passes)
	assert.Equal(t, float32(0.1), cfg.Bloom.Exposure)
	assert.True(t, cfg.Resources.HotReload)
	assert.Equal(t, "shaders", cfg.Resources.ShaderDir)
	assert.Equal(t, filepath.Join("/srv/farm", "shaders"), cfg.Path(cfg.Resources.ShaderDir))
}

func TestLoadConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestRepositoryConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
