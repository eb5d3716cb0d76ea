// Package config loads runtime settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	Time       TimeConfig       `toml:"time"`
	Window     WindowConfig     `toml:"window"`
	Input      InputConfig      `toml:"input"`
	Controller ControllerConfig `toml:"controller"`
	Logging    LoggingConfig    `toml:"logging"`
	Paths      PathsConfig      `toml:"paths"`
}

type TimeConfig struct {
	Delta float32 `toml:"delta"` // seconds per frame when Fixed
	Fixed bool    `toml:"fixed"` // false: measure wall-clock time between frames
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type InputConfig struct {
	LockMouse bool `toml:"lock_mouse"`
}

type ControllerConfig struct {
	Speed       float32 `toml:"speed"`
	HighSpeed   float32 `toml:"high_speed"`
	Sensitivity float32 `toml:"sensitivity"` // radians per pixel
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PathsConfig struct {
	SettingsDir string `toml:"settings_dir"`
	AssetsDir   string `toml:"assets_dir"`
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Time: TimeConfig{
			Delta: 0.02,
			Fixed: true,
		},
		Window: WindowConfig{
			Width:  1200,
			Height: 1000,
			Title:  "mono",
		},
		Input: InputConfig{
			LockMouse: false,
		},
		Controller: ControllerConfig{
			Speed:       5,
			HighSpeed:   20,
			Sensitivity: 0.003,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Paths: PathsConfig{
			SettingsDir: "settings",
			AssetsDir:   "assets",
		},
	}
}

// AspectRatio returns width/height of the configured window.
func (s Settings) AspectRatio() float32 {
	if s.Window.Height == 0 {
		return 1
	}
	return float32(s.Window.Width) / float32(s.Window.Height)
}
