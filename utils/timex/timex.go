// File: timex.go
// Title: Date and Time Helpers
// Description: Unix epoch conversions, day boundaries, inclusive range checks
//              and whole-day differences for time.Time values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"time"

	"github.com/msto63/mdwx/utils/comparex"
	"github.com/msto63/mdwx/utils/optional"
)

// ===============================
// Unix Epoch Conversions
// ===============================

// ToUnixSeconds returns the seconds elapsed since the Unix epoch
func ToUnixSeconds(t time.Time) int64 {
	return t.Unix()
}

// FromUnixSeconds returns the UTC time for the given epoch seconds
func FromUnixSeconds(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// ToUnixMillis returns the milliseconds elapsed since the Unix epoch
func ToUnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromUnixMillis returns the UTC time for the given epoch milliseconds
func FromUnixMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromUnixSecondsOptional converts present epoch seconds and propagates absence
func FromUnixSecondsOptional(sec optional.Value[int64]) optional.Value[time.Time] {
	return optional.Map(sec, FromUnixSeconds)
}

// ===============================
// Day Boundaries
// ===============================

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// ===============================
// Comparison
// ===============================

// IsBetween reports whether start <= t <= end
func IsBetween(t, start, end time.Time) bool {
	return comparex.IsBetweenFunc(t, start, end, time.Time.Compare)
}

// DaysBetween returns the number of calendar days from start to end, negative
// when end is before start. Both times are compared in start's location.
func DaysBetween(start, end time.Time) int {
	from := StartOfDay(start)
	to := StartOfDay(end.In(start.Location()))

	// Rebuild both dates at UTC noon so DST shifts cannot skew the division
	a := time.Date(from.Year(), from.Month(), from.Day(), 12, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 12, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
