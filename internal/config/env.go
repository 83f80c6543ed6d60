package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CELLWINDOW_"

// envSetters maps an environment variable suffix to the setting it
// overrides.
var envSetters = map[string]func(c *Config, v string) error{
	"TITLE":       func(c *Config, v string) error { c.Window.Title = v; return nil },
	"WIDTH":       func(c *Config, v string) error { return setInt(&c.Window.Width, v) },
	"HEIGHT":      func(c *Config, v string) error { return setInt(&c.Window.Height, v) },
	"FULLSCREEN":  func(c *Config, v string) error { return setBool(&c.Window.Fullscreen, v) },
	"EXIT_ON_ESC": func(c *Config, v string) error { return setBool(&c.Window.ExitOnEsc, v) },
	"SAMPLES":     func(c *Config, v string) error { return setUint8(&c.Window.Samples, v) },
	"VSYNC":       func(c *Config, v string) error { return setBool(&c.Window.VSync, v) },
	"FOREGROUND":  func(c *Config, v string) error { c.Window.Foreground = v; return nil },
	"BACKGROUND":  func(c *Config, v string) error { c.Window.Background = v; return nil },
	"UPS":         func(c *Config, v string) error { return setInt(&c.Loop.UPS, v) },
	"MAX_FPS":     func(c *Config, v string) error { return setInt(&c.Loop.MaxFPS, v) },
	"LOG_LEVEL":   func(c *Config, v string) error { c.Logging.Level = strings.ToLower(v); return nil },
	"LOG_FILE":    func(c *Config, v string) error { c.Logging.File = v; return nil },
}

// EnvVars returns the names of all recognized environment variables.
func EnvVars() []string {
	names := make([]string, 0, len(envSetters))
	for suffix := range envSetters {
		names = append(names, EnvPrefix+suffix)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides settings from environment variables found by lookup,
// usually os.LookupEnv. Empty values are treated as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, name := range EnvVars() {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		set := envSetters[strings.TrimPrefix(name, EnvPrefix)]
		if err := set(c, v); err != nil {
			return fmt.Errorf("environment %s: %w", name, err)
		}
	}
	return nil
}

func setInt(dst *int, s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*dst = n
	return nil
}

func setUint8(dst *uint8, s string) error {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return fmt.Errorf("invalid sample count %q", s)
	}
	*dst = uint8(n)
	return nil
}

func setBool(dst *bool, s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}
