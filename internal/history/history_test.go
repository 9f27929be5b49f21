package history

import (
	"testing"
	"time"

	"github.com/jask/degrees/internal/convert"
)

var baseTime = time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

func TestRecordNewestFirst(t *testing.T) {
	s := NewStore(10)
	s.Record(convert.FahrenheitToCelsius, 32, 0, baseTime)
	s.Record(convert.CelsiusToFahrenheit, 100, 212, baseTime.Add(time.Minute))

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Input != 100 {
		t.Errorf("head input = %v, want 100 (newest first)", entries[0].Input)
	}
	if entries[1].Input != 32 {
		t.Errorf("tail input = %v, want 32", entries[1].Input)
	}
}

func TestEvictionKeepsBoundAndDropsOldest(t *testing.T) {
	s := NewStore(50)
	for i := 0; i < 51; i++ {
		s.Record(convert.FahrenheitToCelsius, float64(i), 0, baseTime.Add(time.Duration(i)*time.Second))
	}
	if s.Len() != 50 {
		t.Fatalf("len = %d, want 50", s.Len())
	}
	entries := s.Entries()
	if entries[0].Input != 50 {
		t.Errorf("head input = %v, want 50", entries[0].Input)
	}
	// Entry 0 was the earliest inserted and the one evicted.
	if entries[len(entries)-1].Input != 1 {
		t.Errorf("tail input = %v, want 1", entries[len(entries)-1].Input)
	}
}

func TestClearIdempotent(t *testing.T) {
	s := NewStore(5)
	s.Clear()
	if !s.IsEmpty() {
		t.Error("cleared empty store should be empty")
	}
	s.Record(convert.FahrenheitToCelsius, 32, 0, baseTime)
	s.Clear()
	if !s.IsEmpty() {
		t.Error("store not empty after clear")
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Error("second clear changed emptiness")
	}
}

func TestBadCapacityFallsBack(t *testing.T) {
	if got := NewStore(0).Capacity(); got != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", got, DefaultCapacity)
	}
	if got := NewStore(-3).Capacity(); got != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", got, DefaultCapacity)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewStore(5)
	s.Record(convert.FahrenheitToCelsius, 32, 0, baseTime)
	entries := s.Entries()
	entries[0].Input = 999
	if s.Entries()[0].Input != 32 {
		t.Error("mutating Entries() result leaked into the store")
	}
}

func TestDisplayText(t *testing.T) {
	r := Record{Direction: convert.FahrenheitToCelsius, Input: 32.0, Output: 0.0, At: baseTime}
	if got := DisplayText(r); got != "F to C: 32.0 => 0.00" {
		t.Errorf("DisplayText = %q, want %q", got, "F to C: 32.0 => 0.00")
	}
	r = Record{Direction: convert.CelsiusToFahrenheit, Input: 37, Output: 98.6, At: baseTime}
	if got := DisplayText(r); got != "C to F: 37.0 => 98.60" {
		t.Errorf("DisplayText = %q, want %q", got, "C to F: 37.0 => 98.60")
	}
}

func TestRelativeTime(t *testing.T) {
	r := Record{At: baseTime}
	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Second, "Just now"},
		{59 * time.Second, "Just now"},
		{5 * time.Minute, "5 min ago"},
		{59*time.Minute + 30*time.Second, "59 min ago"},
		{3 * time.Hour, "3 hr ago"},
		{23 * time.Hour, "23 hr ago"},
		{48 * time.Hour, "3/2/2026"},
	}
	for _, tc := range cases {
		if got := RelativeTime(r, baseTime.Add(tc.elapsed)); got != tc.want {
			t.Errorf("RelativeTime(+%v) = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}
