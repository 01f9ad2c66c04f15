package timemodel

import (
	"fmt"
	"time"
)

const (
	MinutesInADay    = 24 * 60
	MinutesInTwoDays = 2 * MinutesInADay
)

// DailyInterval is a shift's time-of-day window, expressed as minutes since
// local midnight. Duration may exceed MinutesInADay for shifts that run
// past midnight into the next calendar day.
type DailyInterval struct {
	StartMinutes    int32
	DurationMinutes int32
}

func NewDailyInterval(startMinutes, durationMinutes int32) DailyInterval {
	return DailyInterval{StartMinutes: startMinutes, DurationMinutes: durationMinutes}
}

// MustParseDailyInterval builds a DailyInterval from "H:i"-"H:i" clock
// strings, e.g. ("08:00", "16:30"). Panics on malformed input; intended
// for fixtures and instance builders with literal clock strings.
func MustParseDailyInterval(startClock, endClock string) DailyInterval {
	start := parseClock(startClock)
	end := parseClock(endClock)
	duration := end - start
	if duration <= 0 {
		duration += MinutesInADay
	}
	return DailyInterval{StartMinutes: start, DurationMinutes: duration}
}

func parseClock(s string) int32 {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		panic(fmt.Sprintf("timemodel: malformed clock string %q: %v", s, err))
	}
	return int32(h*60 + m)
}

func (d DailyInterval) EndMinutes() int32 { return d.StartMinutes + d.DurationMinutes }

// ToRange anchors this daily interval to a concrete calendar day, returning
// the absolute [start,end) instant range in loc's local time. The
// endpoints are built as wall-clock timestamps (time.Date normalizes the
// minute offsets through loc's zone rules), so on a DST transition day
// the resolved range's actual duration differs from DurationMinutes by
// the size of the shifted hour.
func (d DailyInterval) ToRange(day Instant, loc *time.Location) Range {
	y, m, dd := day.In(loc).Date()
	start := time.Date(y, m, dd, 0, int(d.StartMinutes), 0, 0, loc)
	end := time.Date(y, m, dd, 0, int(d.EndMinutes()), 0, 0, loc)
	return Range{Start: start, End: end}
}

// WithPadding returns a new interval padded symmetrically on both sides.
func (d DailyInterval) WithPadding(padding int32) DailyInterval {
	return DailyInterval{StartMinutes: d.StartMinutes - padding, DurationMinutes: d.DurationMinutes + 2*padding}
}

// WithPaddingAsymmetric returns a new interval padded independently before
// and after.
func (d DailyInterval) WithPaddingAsymmetric(before, after int32) DailyInterval {
	return DailyInterval{StartMinutes: d.StartMinutes - before, DurationMinutes: d.DurationMinutes + before + after}
}

func (d DailyInterval) InPreviousDay() DailyInterval {
	return DailyInterval{StartMinutes: d.StartMinutes - MinutesInADay, DurationMinutes: d.DurationMinutes}
}

func (d DailyInterval) InNextDay() DailyInterval {
	return DailyInterval{StartMinutes: d.StartMinutes + MinutesInADay, DurationMinutes: d.DurationMinutes}
}

// IntersectsInSameDay reports whether two intervals anchored to the same
// calendar day overlap.
func (d DailyInterval) IntersectsInSameDay(other DailyInterval) bool {
	return d.StartMinutes < other.StartMinutes+other.DurationMinutes && d.StartMinutes+d.DurationMinutes > other.StartMinutes
}

// IntersectsOtherInOffsetDay reports whether other, anchored offset days
// away from d's day, overlaps d.
func (d DailyInterval) IntersectsOtherInOffsetDay(other DailyInterval, offset int32) bool {
	return d.StartMinutes < other.StartMinutes+other.DurationMinutes+offset*MinutesInADay &&
		d.StartMinutes+d.DurationMinutes > other.StartMinutes+offset*MinutesInADay
}
