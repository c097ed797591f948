package workday

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	// 2024-02-12 is a Monday.
	monday := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
	for i := range 7 {
		day := monday.AddDate(0, 0, i)
		want := day.Weekday() != time.Saturday && day.Weekday() != time.Sunday
		if got := c.IsWorkday(day); got != want {
			t.Errorf("%s: got %v, want %v", day.Weekday(), got, want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("custom workdays", func(t *testing.T) {
		c, err := New([]string{"Sunday", "monday", " tuesday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sunday := time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)
		if !c.IsWorkday(sunday) {
			t.Error("expected sunday to be a workday")
		}
		if c.IsWorkday(sunday.AddDate(0, 0, 3)) {
			t.Error("expected wednesday to be a rest day")
		}
	})

	t.Run("unknown weekday", func(t *testing.T) {
		_, err := New([]string{"monday", "funday"})
		if !errors.Is(err, ErrUnknownWeekday) {
			t.Errorf("got error %v, want %v", err, ErrUnknownWeekday)
		}
	})

	t.Run("empty list has no workdays", func(t *testing.T) {
		c, err := New(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.IsWorkday(time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected no workdays")
		}
	})
}

func TestMarker(t *testing.T) {
	if Marker(true) != "班" {
		t.Errorf("got %q for workday", Marker(true))
	}
	if Marker(false) != "休" {
		t.Errorf("got %q for rest day", Marker(false))
	}
}
