package constraint

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// Info byte values carried by ShiftCoverage violations, read by the
// repair move to pick a direction: add an employee to an understaffed
// cell, remove one from an overstaffed cell.
const (
	CoverageUnder uint8 = iota
	CoverageOver
)

// ShiftCoverage penalizes both understaffing (fewer employees assigned
// than a shift requires) and overstaffing (more than its slot cap) on
// each (shift, day), scaled by the shift's duration so longer shifts carry
// proportionally larger penalties.
type ShiftCoverage struct {
	durationMinutes []int64 // indexed x*sizeZ+z
	sizeX, sizeZ    uint64
	shifts          []*domain.Shift
}

func NewShiftCoverage(horizon state.Size, shifts []*domain.Shift, days []domain.Day, loc *time.Location) *ShiftCoverage {
	sizeX := uint64(len(shifts))
	sizeZ := uint64(len(days))
	c := &ShiftCoverage{
		durationMinutes: make([]int64, sizeX*sizeZ),
		sizeX:           sizeX,
		sizeZ:           sizeZ,
		shifts:          shifts,
	}
	for x := uint64(0); x < sizeX; x++ {
		for z := uint64(0); z < sizeZ; z++ {
			r := shifts[x].Interval.ToRange(days[z].Range.Start, loc)
			c.durationMinutes[x*sizeZ+z] = int64(r.Duration(loc).Minutes())
		}
	}
	return c
}

func (c *ShiftCoverage) Name() string { return "SHIFT_COVERAGE" }

func (c *ShiftCoverage) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	sizeY := s.SizeY()
	for x := uint64(0); x < c.sizeX; x++ {
		shift := c.shifts[x]
		for z := uint64(0); z < c.sizeZ; z++ {
			var assigned int64
			for y := uint64(0); y < sizeY; y++ {
				if s.GetXYZ(x, y, z) {
					assigned++
				}
			}
			duration := c.durationMinutes[x*c.sizeZ+z]
			slotCount := int64(shift.SlotCountAt(z))
			requiredSlotCount := int64(shift.RequiredSlotCountAt(z))

			if assigned > slotCount {
				v := violationXZ(x, z, Score{Hard: -(assigned - slotCount) * duration})
				v.Info = CoverageOver
				total.Violate(v)
			}
			if assigned < requiredSlotCount {
				v := violationXZ(x, z, Score{Hard: -(requiredSlotCount - assigned) * duration})
				v.Info = CoverageUnder
				total.Violate(v)
			}
		}
	}
	return total
}
