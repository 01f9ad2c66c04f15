package constraint

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// EmployeeGeneral enforces each employee's shift-pattern bounds: how many
// consecutive days they may work, how many consecutive days off they must
// take between working runs, and how many working weekends they may
// accumulate over the whole horizon.
type EmployeeGeneral struct {
	isWeekend       []bool  // indexed z
	durationMinutes []int64 // indexed x*sizeZ+z, used only to scale the weekend-overrun penalty
	sizeX, sizeZ    uint64
	employees       []*domain.Employee
}

func NewEmployeeGeneral(shifts []*domain.Shift, employees []*domain.Employee, days []domain.Day, loc *time.Location) *EmployeeGeneral {
	sizeX, sizeZ := uint64(len(shifts)), uint64(len(days))
	c := &EmployeeGeneral{
		isWeekend:       make([]bool, sizeZ),
		durationMinutes: make([]int64, sizeX*sizeZ),
		sizeX:           sizeX,
		sizeZ:           sizeZ,
		employees:       employees,
	}
	for z, d := range days {
		c.isWeekend[z] = d.Weekday.IsWeekend()
		for x := uint64(0); x < sizeX; x++ {
			r := shifts[x].Interval.ToRange(d.Range.Start, loc)
			c.durationMinutes[x*sizeZ+uint64(z)] = int64(r.Duration(loc).Minutes())
		}
	}
	return c
}

func (c *EmployeeGeneral) Name() string { return "EMPLOYEE_GENERAL" }

// workingShiftAndDuration reports whether employee y works any shift on
// day z, and the duration of the first such shift found in axis order.
func (c *EmployeeGeneral) workingShiftAndDuration(s *state.State, y, z uint64) (bool, int64) {
	for x := uint64(0); x < c.sizeX; x++ {
		if s.GetXYZ(x, y, z) {
			return true, c.durationMinutes[x*c.sizeZ+z]
		}
	}
	return false, 0
}

func (c *EmployeeGeneral) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	sizeZ := c.sizeZ
	for y, employee := range c.employees {
		g := employee.General
		yu := uint64(y)

		var workingWeekendCount int32
		var z uint64
		for z < sizeZ {
			working, _ := c.workingShiftAndDuration(s, yu, z)
			if !working {
				// Days-off run.
				runStart := z
				for z < sizeZ {
					w, _ := c.workingShiftAndDuration(s, yu, z)
					if w {
						break
					}
					z++
				}
				runLen := z - runStart
				if z < sizeZ && runLen < uint64(g.MinConsecutiveDaysOffCount) {
					total.Violate(violationYZ(yu, z, Score{Hard: -1}))
				}
				continue
			}

			// Working run.
			runStart := z
			var lastMinutes int64
			for z < sizeZ {
				w, minutes := c.workingShiftAndDuration(s, yu, z)
				if !w {
					break
				}
				lastMinutes = minutes
				if c.isWeekend[z] {
					workingWeekendCount++
				}
				runLen := z - runStart + 1
				if g.MaxConsecutiveShiftCount > 0 && runLen > uint64(g.MaxConsecutiveShiftCount) {
					total.Violate(violationYZ(yu, z, Score{Hard: -1}))
				}
				if g.MaxWorkingWeekendCount >= 0 && workingWeekendCount > g.MaxWorkingWeekendCount {
					total.Violate(violationYZ(yu, z, Score{Soft: -lastMinutes / 2}))
				}
				z++
			}
			runLen := z - runStart
			if z < sizeZ && runLen < uint64(g.MinConsecutiveShiftCount) {
				total.Violate(violationYZ(yu, z, Score{Hard: -1}))
			}
		}
	}
	return total
}
