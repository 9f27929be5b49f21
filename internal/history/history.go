// Package history keeps a bounded, newest-first record of completed
// conversions and derives the display strings shown for each entry.
package history

import (
	"fmt"
	"time"

	"github.com/jask/degrees/internal/convert"
)

// DefaultCapacity bounds the store when no explicit capacity is configured.
const DefaultCapacity = 50

// Record is one completed conversion. Immutable once stored.
type Record struct {
	Direction convert.Direction
	Input     float64
	Output    float64
	At        time.Time
}

// Store holds recent conversions, newest first. Not safe for concurrent
// use; the TUI drives it from a single update loop.
type Store struct {
	capacity int
	entries  []Record
}

// NewStore returns a store bounded to capacity. Values below 1 fall back
// to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Record inserts a completed conversion at the head. When the store is
// over capacity afterwards, the single oldest entry is dropped.
func (s *Store) Record(dir convert.Direction, input, output float64, at time.Time) {
	s.entries = append([]Record{{Direction: dir, Input: input, Output: output, At: at}}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// Clear empties the store. Safe to call when already empty.
func (s *Store) Clear() {
	s.entries = nil
}

func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stored records, newest first. Callers
// never mutate the store's own backing slice.
func (s *Store) Entries() []Record {
	out := make([]Record, len(s.entries))
	copy(out, s.entries)
	return out
}

// Capacity reports the configured bound.
func (s *Store) Capacity() int {
	return s.capacity
}

// DisplayText renders a record as "F to C: 32.0 => 0.00". Input keeps one
// decimal, the result two.
func DisplayText(r Record) string {
	return fmt.Sprintf("%s: %.1f => %.2f", r.Direction.Label(), r.Input, r.Output)
}

// RelativeTime renders how long ago a record was created, given now.
// Entries older than a day show the record's own calendar date instead of
// an elapsed count. Pure in now so tests can pin the clock.
func RelativeTime(r Record, now time.Time) string {
	elapsed := now.Sub(r.At)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d/%d/%d", r.At.Day(), int(r.At.Month()), r.At.Year())
	}
}
