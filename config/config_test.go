package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/mono/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.toml")
	data := `
[time]
delta = 0.01
fixed = false

[window]
width = 800
height = 600

[controller]
sensitivity = 0.01
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(0.01), cfg.Time.Delta)
	assert.False(t, cfg.Time.Fixed)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, float32(0.01), cfg.Controller.Sensitivity)

	// Untouched keys keep their defaults.
	assert.Equal(t, float32(5), cfg.Controller.Speed)
	assert.Equal(t, "mono", cfg.Window.Title)
	assert.InDelta(t, 800.0/600.0, cfg.AspectRatio(), 1e-6)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth = "), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			logger, err := config.NewLogger(config.LoggingConfig{Level: "debug", Format: format})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}

	logger, err := config.NewLogger(config.LoggingConfig{Level: "loud"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
