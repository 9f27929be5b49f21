package main

import (
	"fmt"
	"math"
	"time"

	"github.com/jask/degrees/internal/convert"
	"github.com/jask/degrees/internal/history"
)

// runValidation executes a non-TUI smoke path through the conversion core:
// parse, convert, record, format. Used by --validate in CI and after
// dependency bumps.
func runValidation() error {
	value, err := convert.Convert("98.6", convert.FahrenheitToCelsius)
	if err != nil {
		return fmt.Errorf("convert 98.6 F: %w", err)
	}
	if math.Abs(value-37.0) > 1e-9 {
		return fmt.Errorf("98.6 F = %v C, want 37", value)
	}

	if _, err := convert.Convert("1.2.3", convert.CelsiusToFahrenheit); err == nil {
		return fmt.Errorf("expected 1.2.3 to be rejected")
	}

	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	store := history.NewStore(history.DefaultCapacity)
	store.Record(convert.FahrenheitToCelsius, 98.6, value, now)
	if store.Len() != 1 {
		return fmt.Errorf("history length = %d, want 1", store.Len())
	}

	entry := store.Entries()[0]
	if got, want := history.DisplayText(entry), "F to C: 98.6 => 37.00"; got != want {
		return fmt.Errorf("display text = %q, want %q", got, want)
	}
	if got := history.RelativeTime(entry, now.Add(30*time.Second)); got != "Just now" {
		return fmt.Errorf("relative time = %q, want %q", got, "Just now")
	}

	store.Clear()
	if !store.IsEmpty() {
		return fmt.Errorf("store not empty after clear")
	}
	return nil
}
