// Package config loads cellwindow configuration.
//
// Configuration comes from, in increasing priority: built-in defaults, a
// TOML or YAML file chosen by extension, and CELLWINDOW_* environment
// variables. A missing file is not an error. Unknown keys in a file are.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/logging"
	"github.com/dshills/cellwindow/internal/loop"
	"github.com/dshills/cellwindow/internal/window"
)

// Config is the complete configuration.
type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Loop    LoopConfig    `toml:"loop" yaml:"loop"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title      string `toml:"title" yaml:"title"`
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	ExitOnEsc  bool   `toml:"exit_on_esc" yaml:"exit_on_esc"`
	Samples    uint8  `toml:"samples" yaml:"samples"`
	VSync      bool   `toml:"vsync" yaml:"vsync"`

	// Foreground and Background are color names or #rrggbb.
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// LoopConfig sets the game loop rates.
type LoopConfig struct {
	UPS    int `toml:"ups" yaml:"ups"`
	MaxFPS int `toml:"max_fps" yaml:"max_fps"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty discards log output, since the
	// terminal itself is the display.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "cellwindow",
			Width:      80,
			Height:     50,
			ExitOnEsc:  true,
			Foreground: "white",
			Background: "black",
		},
		Loop: LoopConfig{
			UPS:    loop.DefaultUPS,
			MaxFPS: loop.DefaultMaxFPS,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults, then applies environment
// overrides. An empty path or a missing file yields the defaults with
// overrides applied. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, data, cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults only.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data as the format implied by path's extension, over the
// defaults. Environment overrides are not applied.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			perr := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			var serr *toml.StrictMissingError
			switch {
			case errors.As(err, &derr):
				perr.Line, perr.Column = derr.Position()
			case errors.As(err, &serr) && len(serr.Errors) > 0:
				first := serr.Errors[0]
				perr.Line, perr.Column = first.Position()
				perr.Message = fmt.Sprintf("unknown key %q", strings.Join(first.Key(), "."))
			}
			return perr
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return nil
}

// Validate reports every out-of-range setting in one *ValidationError.
func (c *Config) Validate() error {
	verr := &ValidationError{}

	if c.Window.Width <= 0 {
		verr.add("window.width", c.Window.Width, "must be positive")
	}
	if c.Window.Height <= 0 {
		verr.add("window.height", c.Window.Height, "must be positive")
	}
	if _, err := console.ParseColor(c.Window.Foreground); err != nil {
		verr.add("window.foreground", c.Window.Foreground, err.Error())
	}
	if _, err := console.ParseColor(c.Window.Background); err != nil {
		verr.add("window.background", c.Window.Background, err.Error())
	}
	if c.Loop.UPS <= 0 {
		verr.add("loop.ups", c.Loop.UPS, "must be positive")
	}
	if c.Loop.MaxFPS <= 0 {
		verr.add("loop.max_fps", c.Loop.MaxFPS, "must be positive")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		verr.add("logging.level", c.Logging.Level, "must be debug, info, warn, or error")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Settings converts the window section to window settings.
func (c *Config) Settings() window.Settings {
	w := c.Window
	return window.NewSettings(w.Title, window.Size{Width: w.Width, Height: w.Height}).
		WithFullscreen(w.Fullscreen).
		WithExitOnEsc(w.ExitOnEsc).
		WithSamples(w.Samples).
		WithVSync(w.VSync)
}

// Colors returns the parsed foreground and background colors.
func (c *Config) Colors() (fg, bg console.Color, err error) {
	if fg, err = console.ParseColor(c.Window.Foreground); err != nil {
		return fg, bg, fmt.Errorf("window.foreground: %w", err)
	}
	if bg, err = console.ParseColor(c.Window.Background); err != nil {
		return fg, bg, fmt.Errorf("window.background: %w", err)
	}
	return fg, bg, nil
}
