package constraint

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// ValidShiftDay forbids assigning a shift on a calendar weekday it is not
// eligible to run on (per its weekday bitmask).
type ValidShiftDay struct {
	invalid      *bitstore.Matrix // (x,z) -> true means x is NOT eligible on day z
	sizeX, sizeZ uint64
}

func NewValidShiftDay(shifts []*domain.Shift, days []domain.Day) *ValidShiftDay {
	sizeX, sizeZ := uint64(len(shifts)), uint64(len(days))
	c := &ValidShiftDay{invalid: bitstore.NewMatrix(sizeX, sizeZ), sizeX: sizeX, sizeZ: sizeZ}
	for x := uint64(0); x < sizeX; x++ {
		for z := uint64(0); z < sizeZ; z++ {
			if !shifts[x].IsEligibleOn(days[z].Weekday, days[z].Holiday) {
				c.invalid.Set(x, z)
			}
		}
	}
	return c
}

func (c *ValidShiftDay) Name() string { return "VALID_SHIFT_DAY" }

func (c *ValidShiftDay) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	for x := uint64(0); x < c.sizeX; x++ {
		for z := uint64(0); z < c.sizeZ; z++ {
			if c.invalid.Get(x, z) && s.GetXZ(x, z) {
				total.Violate(violationXZ(x, z, Score{Hard: -1}))
			}
		}
	}
	return total
}
