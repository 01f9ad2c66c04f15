package constraint

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// RestBetweenShifts forbids an employee from starting a shift before the
// rest period demanded by a shift they already cover has elapsed, whether
// the conflicting pair falls on the same day or up to maxOffsetDays apart.
type RestBetweenShifts struct {
	sameDay       *bitstore.SymmetricalMatrix
	offsetDay     []*bitstore.SquareMatrix // index 0 => offset 1, index 1 => offset 2, ...
	maxOffsetDays uint64
	sizeX         uint64
}

func NewRestBetweenShifts(shifts []*domain.Shift) *RestBetweenShifts {
	n := uint64(len(shifts))
	padded := make([]timemodel.DailyInterval, n)
	for i, sh := range shifts {
		padded[i] = sh.Interval.WithPaddingAsymmetric(sh.RestMinutesBefore, sh.RestMinutesAfter)
	}

	c := &RestBetweenShifts{
		sameDay: bitstore.NewSymmetricalMatrix(n),
		sizeX:   n,
	}
	for x1 := uint64(0); x1 < n; x1++ {
		for x2 := x1 + 1; x2 < n; x2++ {
			if padded[x1].IntersectsInSameDay(shifts[x2].Interval) || shifts[x1].Interval.IntersectsInSameDay(padded[x2]) {
				c.sameDay.Set(x1, x2)
			}
		}
	}

	var maxOffsetMinutes int32
	for _, sh := range shifts {
		duration := sh.Interval.DurationMinutes
		if d := duration + sh.RestMinutesBefore; d > maxOffsetMinutes {
			maxOffsetMinutes = d
		}
		if d := duration + sh.RestMinutesAfter; d > maxOffsetMinutes {
			maxOffsetMinutes = d
		}
	}
	maxOffsetDays := uint64((maxOffsetMinutes + timemodel.MinutesInADay - 1) / timemodel.MinutesInADay)
	c.maxOffsetDays = maxOffsetDays
	c.offsetDay = make([]*bitstore.SquareMatrix, maxOffsetDays)
	for od := uint64(0); od < maxOffsetDays; od++ {
		offset := int32(od + 1)
		m := bitstore.NewSquareMatrix(n)
		for x1 := uint64(0); x1 < n; x1++ {
			for x2 := uint64(0); x2 < n; x2++ {
				if padded[x1].IntersectsOtherInOffsetDay(shifts[x2].Interval, offset) ||
					padded[x1].IntersectsOtherInOffsetDay(shifts[x2].Interval, -offset) {
					m.Set(x1, x2)
				}
			}
		}
		c.offsetDay[od] = m
	}
	return c
}

func (c *RestBetweenShifts) Name() string { return "REST_BETWEEN_SHIFTS" }

func (c *RestBetweenShifts) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	sizeY, sizeZ := s.SizeY(), s.SizeZ()
	for y := uint64(0); y < sizeY; y++ {
		for z := uint64(0); z < sizeZ; z++ {
			for x1 := uint64(0); x1 < c.sizeX; x1++ {
				if !s.GetXYZ(x1, y, z) {
					continue
				}
				for x2 := x1 + 1; x2 < c.sizeX; x2++ {
					if c.sameDay.Get(x1, x2) && s.GetXYZ(x2, y, z) {
						total.Violate(violationXYZ(x1, y, z, Score{Hard: -1}))
						total.Violate(violationXYZ(x2, y, z, Score{Hard: -1}))
					}
				}
				for od := uint64(0); od < c.maxOffsetDays; od++ {
					z2 := z + od + 1
					if z2 >= sizeZ {
						break
					}
					m := c.offsetDay[od]
					for x2 := uint64(0); x2 < c.sizeX; x2++ {
						if (m.Get(x1, x2) || m.Get(x2, x1)) && s.GetXYZ(x2, y, z2) {
							total.Violate(violationXYZ(x1, y, z, Score{Hard: -1}))
							total.Violate(violationXYZ(x2, y, z2, Score{Hard: -1}))
						}
					}
				}
			}
		}
	}
	return total
}
