// Package timex provides date and time helpers: Unix epoch conversions, day
// boundaries, inclusive range checks and calendar-day differences.
package timex
