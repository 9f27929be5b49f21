package main

import (
	"testing"

	"github.com/jask/degrees/internal/convert"
)

func TestParseSettingsValid(t *testing.T) {
	data := []byte(`
history_capacity = 25
history_rows = 5
default_direction = "c_to_f"
`)
	s, err := parseSettings(data)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.HistoryCapacity != 25 {
		t.Errorf("history_capacity = %d, want 25", s.HistoryCapacity)
	}
	if s.HistoryRows != 5 {
		t.Errorf("history_rows = %d, want 5", s.HistoryRows)
	}
	if s.DefaultDirection != "c_to_f" {
		t.Errorf("default_direction = %q, want %q", s.DefaultDirection, "c_to_f")
	}
	if s.startDirection() != convert.CelsiusToFahrenheit {
		t.Error("startDirection should be CelsiusToFahrenheit")
	}
}

func TestParseSettingsClampsBadValues(t *testing.T) {
	data := []byte(`
history_capacity = 0
history_rows = -2
default_direction = "kelvin"
`)
	s, err := parseSettings(data)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.HistoryCapacity != 50 {
		t.Errorf("history_capacity = %d, want default 50", s.HistoryCapacity)
	}
	if s.HistoryRows != 8 {
		t.Errorf("history_rows = %d, want default 8", s.HistoryRows)
	}
	if s.DefaultDirection != "f_to_c" {
		t.Errorf("default_direction = %q, want default %q", s.DefaultDirection, "f_to_c")
	}
}

func TestParseSettingsMalformedFallsBack(t *testing.T) {
	s, err := parseSettings([]byte(`history_capacity = "lots"`))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if s.HistoryCapacity != 50 {
		t.Errorf("fallback history_capacity = %d, want 50", s.HistoryCapacity)
	}
}

func TestDefaultSettingsTOMLMatchesDefaults(t *testing.T) {
	s, err := parseSettings([]byte(defaultSettingsTOML))
	if err != nil {
		t.Fatalf("parseSettings(defaultSettingsTOML): %v", err)
	}
	if s != defaultSettings() {
		t.Errorf("parsed defaults = %+v, want %+v", s, defaultSettings())
	}
}

func TestLoadSettingsCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s != defaultSettings() {
		t.Errorf("first-run settings = %+v, want defaults", s)
	}
	// Second load reads the file just written.
	s, err = loadSettings()
	if err != nil {
		t.Fatalf("loadSettings (second run): %v", err)
	}
	if s != defaultSettings() {
		t.Errorf("second-run settings = %+v, want defaults", s)
	}
}
