// Package timemodel implements the instant/range/daily-interval time model
// used to turn shift definitions and a planning horizon into concrete,
// time-zone- and DST-aware durations.
package timemodel

import "time"

// Instant is a point in time.
type Instant = time.Time

// Weekday follows the ISO convention used throughout the domain model:
// Monday=0 .. Sunday=6, so that "weekend" is the bitmask (1<<5)|(1<<6).
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf converts a standard library weekday to the Monday-based
// Weekday used by shift weekday bitmasks.
func WeekdayOf(t Instant) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsWeekend reports whether the weekday is Saturday or Sunday.
func (w Weekday) IsWeekend() bool { return w == Saturday || w == Sunday }
