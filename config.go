package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jask/degrees/internal/convert"
	"github.com/jask/degrees/internal/history"
)

// ---------------------------------------------------------------------------
// Settings (TOML-based)
// ---------------------------------------------------------------------------

// appSettings is the on-disk settings structure.
type appSettings struct {
	HistoryCapacity  int    `toml:"history_capacity"`
	HistoryRows      int    `toml:"history_rows"`
	DefaultDirection string `toml:"default_direction"` // "f_to_c" or "c_to_f"
}

const defaultSettingsTOML = `# Degrees settings

# Maximum number of past conversions kept in history.
history_capacity = 50

# History rows shown at once before scrolling.
history_rows = 8

# Conversion direction on startup: "f_to_c" or "c_to_f".
default_direction = "f_to_c"
`

func defaultSettings() appSettings {
	return appSettings{
		HistoryCapacity:  history.DefaultCapacity,
		HistoryRows:      8,
		DefaultDirection: "f_to_c",
	}
}

// configDir returns the directory for degrees config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "degrees"), nil
}

// configPath returns the full path to the settings.toml file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// loadSettings loads settings from the config file. If the file doesn't
// exist, it is created with defaults.
func loadSettings() (appSettings, error) {
	path, err := configPath()
	if err != nil {
		return defaultSettings(), err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return defaultSettings(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wrErr := os.WriteFile(path, []byte(defaultSettingsTOML), 0o644); wrErr != nil {
			return defaultSettings(), fmt.Errorf("write default settings: %w", wrErr)
		}
		return defaultSettings(), nil
	}
	if err != nil {
		return defaultSettings(), fmt.Errorf("read settings: %w", err)
	}
	return parseSettings(data)
}

// parseSettings decodes TOML and normalises out-of-range values back to
// defaults rather than failing startup.
func parseSettings(data []byte) (appSettings, error) {
	s := defaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return defaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if s.HistoryCapacity < 1 {
		s.HistoryCapacity = history.DefaultCapacity
	}
	if s.HistoryRows < 1 {
		s.HistoryRows = 8
	}
	if s.DefaultDirection != "f_to_c" && s.DefaultDirection != "c_to_f" {
		s.DefaultDirection = "f_to_c"
	}
	return s, nil
}

// startDirection maps the settings value onto a conversion direction.
func (s appSettings) startDirection() convert.Direction {
	if s.DefaultDirection == "c_to_f" {
		return convert.CelsiusToFahrenheit
	}
	return convert.FahrenheitToCelsius
}
