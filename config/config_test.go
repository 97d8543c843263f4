package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/kiln/config"
	"github.com/plus3/kiln/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "kiln", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Render.TargetTPS)
	assert.Equal(t, "assets", cfg.Asset.Root)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
window:
  title: My Game
  width: 640
  height: 480
  fullscreen: true
render:
  target_tps: 120
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kiln.yaml"), []byte(yaml), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "My Game", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, 120, cfg.Render.TargetTPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, "assets", cfg.Asset.Root)
	assert.True(t, cfg.Window.Resizable)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("KILN_WINDOW_TITLE", "From Env")
	t.Setenv("KILN_RENDER_TARGET_TPS", "30")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Window.Title)
	assert.Equal(t, 30, cfg.Render.TargetTPS)
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"negative tps", "render:\n  target_tps: -1\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "kiln.yaml"), []byte(tc.yaml), 0o644))

			_, err := config.Load(dir)
			require.Error(t, err)
			assert.True(t, errs.IsCategory(err, errs.CategoryConfig))
		})
	}
}

func TestMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kiln.yaml"), []byte("window: ["), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.True(t, errs.IsCategory(err, errs.CategoryConfig))
}
