package domain

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// Day is one day of the planning horizon, carrying its calendar range and
// derived weekday. Holiday marks public holidays, which shift eligibility
// treats separately from the weekday.
type Day struct {
	Index   uint64
	Range   timemodel.Range
	Weekday timemodel.Weekday
	Holiday bool
}

// BuildDays constructs the Z axis: one Day per 24h calendar slice of the
// horizon, starting at horizon.Start, in loc's local calendar.
func BuildDays(horizon timemodel.Range, numDays uint64, loc *time.Location) []Day {
	days := make([]Day, numDays)
	for z := uint64(0); z < numDays; z++ {
		dayRange := horizon.GetDayRangeAt(z, loc)
		days[z] = Day{
			Index:   z,
			Range:   dayRange,
			Weekday: timemodel.WeekdayOf(dayRange.Start),
		}
	}
	return days
}
