package timeutil

import (
	"testing"
	"time"
)

func date(h, m int) time.Time {
	return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC)
}

func TestLateCutoff(t *testing.T) {
	cutoff := LateCutoff(date(8, 0), 5)
	if !cutoff.Equal(date(8, 5)) {
		t.Errorf("LateCutoff(08:00, 5) = %v, want 08:05", cutoff)
	}
	// Zero grace leaves the scheduled entrance untouched.
	if !LateCutoff(date(8, 0), 0).Equal(date(8, 0)) {
		t.Error("LateCutoff with zero grace moved the entrance")
	}
}

func TestDurationBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  time.Duration
	}{
		{"normal span", date(8, 0), date(18, 0), 10 * time.Hour},
		{"zero span", date(8, 0), date(8, 0), 0},
		{"inverted span clamps to zero", date(18, 0), date(8, 0), 0},
	}
	for _, c := range cases {
		if got := DurationBetween(c.start, c.end); got != c.want {
			t.Errorf("%s: DurationBetween = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{time.Hour, "01:00"},
		{9*time.Hour + 30*time.Minute, "09:30"},
		{9*time.Hour + 30*time.Minute + 42*time.Second, "09:30"}, // seconds truncate
		{25 * time.Hour, "25:00"},
		{-time.Hour, "00:00"},
	}
	for _, c := range cases {
		if got := FormatHHMM(c.in); got != c.want {
			t.Errorf("FormatHHMM(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAtClock(t *testing.T) {
	loc, err := time.LoadLocation("America/Guayaquil")
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)
	clock, _ := time.Parse("15:04", "08:30")

	got := AtClock(day, clock)
	if got.Hour() != 8 || got.Minute() != 30 || got.Day() != 10 || got.Location() != loc {
		t.Errorf("AtClock = %v, want 2025-06-10 08:30 in %v", got, loc)
	}
}

func TestWholeMinutes(t *testing.T) {
	if got := WholeMinutes(2*time.Minute + 59*time.Second); got != 2 {
		t.Errorf("WholeMinutes(2m59s) = %d, want 2", got)
	}
	if got := WholeMinutes(-time.Minute); got != 0 {
		t.Errorf("WholeMinutes(-1m) = %d, want 0", got)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(date(23, 59)); got != "2025-06-10" {
		t.Errorf("DateKey = %q, want 2025-06-10", got)
	}
}
