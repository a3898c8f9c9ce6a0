// Package config loads the emulator's optional TOML defaults, following
// the same platform-path and advisory-fallback conventions the teacher's
// debugger configuration uses, scaled down to this machine's much smaller
// tunable surface.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the emulator's tunable defaults. Command-line flags always
// override whatever is loaded here.
type Config struct {
	Execution struct {
		DefaultDelayMS int `toml:"default_delay_ms"`
	} `toml:"execution"`

	Display struct {
		SetGlyph      string `toml:"set_glyph"`
		ClearGlyph    string `toml:"clear_glyph"`
		ShowByDefault bool   `toml:"show_by_default"`
	} `toml:"display"`

	Debugger struct {
		HistorySize int `toml:"history_size"`
	} `toml:"debugger"`
}

// Default returns the built-in configuration used when no config file is
// present or the caller doesn't want one.
func Default() *Config {
	cfg := &Config{}
	cfg.Execution.DefaultDelayMS = 1000
	cfg.Display.SetGlyph = "*"
	cfg.Display.ClearGlyph = " "
	cfg.Display.ShowByDefault = true
	cfg.Debugger.HistorySize = 100
	return cfg
}

// Path returns the platform-specific config file location:
// ~/.config/cpu16/config.toml on Linux/macOS, %APPDATA%\cpu16\config.toml
// on Windows, falling back to a relative path if the home directory can't
// be resolved.
func Path() string {
	if runtime.GOOS == "windows" {
		dir := os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(dir, "cpu16", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "cpu16", "config.toml")
}

// Load reads the config file at the default path, falling back silently to
// Default() if it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, falling back silently to
// Default() if it doesn't exist. A present-but-malformed file is an error;
// the caller decides whether that's fatal.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
