// Package convert implements the Fahrenheit/Celsius conversion formulas and
// the input grammar applied to raw user text before converting.
package convert

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Direction selects which formula a conversion applies.
type Direction int

const (
	FahrenheitToCelsius Direction = iota
	CelsiusToFahrenheit
)

// Label returns the short form used in history display text.
func (d Direction) Label() string {
	if d == CelsiusToFahrenheit {
		return "C to F"
	}
	return "F to C"
}

func (d Direction) String() string {
	if d == CelsiusToFahrenheit {
		return "celsius_to_fahrenheit"
	}
	return "fahrenheit_to_celsius"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == FahrenheitToCelsius {
		return CelsiusToFahrenheit
	}
	return FahrenheitToCelsius
}

// Validation failures returned by ParseInput and Convert. Both are
// recoverable: the caller prompts again and loses no state.
var (
	ErrEmptyInput = errors.New("input is empty")
	ErrNotANumber = errors.New("input is not a number")
)

// Accepted grammar: optional leading minus, digits, optional single decimal
// point followed by digits. Deliberately stricter than what an input field
// lets through while typing ("-" or "." alone are rejected here).
var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// FahrenheitToCelsiusValue converts a temperature reading from °F to °C.
func FahrenheitToCelsiusValue(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheitValue converts a temperature reading from °C to °F.
func CelsiusToFahrenheitValue(c float64) float64 {
	return c*9/5 + 32
}

// ParseInput trims raw and parses it under the strict numeric grammar.
// Any finite value is accepted; there is no physical-plausibility check,
// so readings below absolute zero parse fine.
func ParseInput(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}
	if !numberPattern.MatchString(trimmed) {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// Convert parses raw and applies the formula for dir. This is the single
// entry point the UI uses per conversion request.
func Convert(raw string, dir Direction) (float64, error) {
	v, err := ParseInput(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", strings.TrimSpace(raw), err)
	}
	if dir == CelsiusToFahrenheit {
		return CelsiusToFahrenheitValue(v), nil
	}
	return FahrenheitToCelsiusValue(v), nil
}
