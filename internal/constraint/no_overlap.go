package constraint

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// NoOverlap forbids one employee from covering two shifts that overlap in
// time, whether on the same day or across a midnight boundary.
type NoOverlap struct {
	sameDay   *bitstore.SymmetricalMatrix // shift x shift, same-day time overlap
	adjacent  *bitstore.SquareMatrix      // shift(prevDay) x shift(curDay), directed overlap or block
	sizeX     uint64
}

func NewNoOverlap(shifts []*domain.Shift) *NoOverlap {
	n := uint64(len(shifts))
	c := &NoOverlap{
		sameDay:  bitstore.NewSymmetricalMatrix(n),
		adjacent: bitstore.NewSquareMatrix(n),
		sizeX:    n,
	}
	for x1 := uint64(0); x1 < n; x1++ {
		s1 := shifts[x1]
		for x2 := x1 + 1; x2 < n; x2++ {
			s2 := shifts[x2]
			if s1.Interval.IntersectsInSameDay(s2.Interval) {
				c.sameDay.Set(x1, x2)
			}
		}
	}
	for x1 := uint64(0); x1 < n; x1++ {
		s1 := shifts[x1]
		for x2 := uint64(0); x2 < n; x2++ {
			s2 := shifts[x2]
			if s1.Interval.IntersectsOtherInOffsetDay(s2.Interval, 1) || s1.BlocksShift(x2) {
				c.adjacent.Set(x1, x2)
			}
		}
	}
	return c
}

func (c *NoOverlap) Name() string { return "NO_OVERLAP" }

func (c *NoOverlap) Evaluate(s *state.State) ConstraintScore {
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
						// One violation per participating assignment, so a
						// repair targeting either end removes the conflict.
						total.Violate(violationXYZ(x1, y, z, Score{Hard: -1}))
						total.Violate(violationXYZ(x2, y, z, Score{Hard: -1}))
					}
				}
			}
			if z == 0 {
				continue
			}
			for x1 := uint64(0); x1 < c.sizeX; x1++ {
				if !s.GetXYZ(x1, y, z-1) {
					continue
				}
				for x2 := uint64(0); x2 < c.sizeX; x2++ {
					if !s.GetXYZ(x2, y, z) {
						continue
					}
					if c.adjacent.Get(x1, x2) {
						total.Violate(violationXYZ(x1, y, z-1, Score{Hard: -1}))
						total.Violate(violationXYZ(x2, y, z, Score{Hard: -1}))
					}
				}
			}
		}
	}
	return total
}
