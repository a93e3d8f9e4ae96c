// Package timeutil holds the pure clock arithmetic shared by the attendance
// engine: grace cutoffs, clamped deltas and HH:MM rendering. Nothing here
// reads the wall clock.
package timeutil

import (
	"fmt"
	"time"
)

// AtClock pins the wall-clock portion of clock onto the calendar day of day,
// in day's location. Schedule rules and punches are stored as independent
// date and time-of-day values; this is the single place they are combined.
func AtClock(day time.Time, clock time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		day.Location(),
	)
}

// LateCutoff returns the instant after which an entrance counts as late:
// the scheduled entrance plus the grace period.
func LateCutoff(scheduledEntrance time.Time, graceMinutes int) time.Time {
	return scheduledEntrance.Add(time.Duration(graceMinutes) * time.Minute)
}

// DurationBetween returns end minus start, clamped to zero. Corrupt punch
// sequences can place an exit before an entrance; a negative span must never
// leak into any total.
func DurationBetween(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// WholeMinutes truncates d to whole minutes.
func WholeMinutes(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// FormatHHMM renders a duration as zero-padded hours and minutes, truncating
// seconds. 9h30m42s renders as "09:30".
func FormatHHMM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatClock renders the wall-clock portion of t as "15:04".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// DateKey renders the calendar day of t, used as a lookup key by the
// engine's per-day indexes.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
