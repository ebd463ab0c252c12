package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/imbridge/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"` // RGBA

	// GL context version requested from the platform. The GL backend needs
	// at least MinGLMajor.MinGLMinor.
	GLMajor int `toml:"gl_major"`
	GLMinor int `toml:"gl_minor"`

	// GUIScale divides the window size into GUI display units.
	GUIScale float32 `toml:"gui_scale"`

	LogLevel string `toml:"log_level"`
}

// Oldest GL context version the backend runs on.
const (
	MinGLMajor = 4
	MinGLMinor = 3
)

func DefaultConfig() Config {
	return Config{
		Title:      "imbridge",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		GLMajor:    4,
		GLMinor:    3,
		GUIScale:   1,
		LogLevel:   "info",
	}
}

// LoadConfig reads a TOML file over DefaultConfig. A missing file is not an
// error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.GLMajor < MinGLMajor || (c.GLMajor == MinGLMajor && c.GLMinor < MinGLMinor) {
		return fmt.Errorf("gl version %d.%d is below the required %d.%d", c.GLMajor, c.GLMinor, MinGLMajor, MinGLMinor)
	}
	if c.GUIScale <= 0 {
		return fmt.Errorf("gui_scale %v must be positive", c.GUIScale)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
