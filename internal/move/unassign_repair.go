package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// UnassignRepair clears every set bit inside a violation's geometry: it
// walks whichever coordinates the violation leaves unpinned (an unset
// Flags bit means "all of that axis") and remembers only the bits that
// were actually set, so Revert restores exactly those.
type UnassignRepair struct {
	cleared []location
}

func NewUnassignRepair() *UnassignRepair { return &UnassignRepair{} }

func (m *UnassignRepair) ConfigureForViolation(v constraint.Violation, s *state.State) {
	m.cleared = m.cleared[:0]
	xs := axisRange(v.HasX(), v.X, s.SizeX())
	ys := axisRange(v.HasY(), v.Y, s.SizeY())
	zs := axisRange(v.HasZ(), v.Z, s.SizeZ())
	ws := axisRange(v.HasW(), v.W, s.SizeW())
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				for _, w := range ws {
					if s.Get(x, y, z, w) {
						m.cleared = append(m.cleared, location{x, y, z, w})
					}
				}
			}
		}
	}
}

func (m *UnassignRepair) IsIdentity() bool { return len(m.cleared) == 0 }

func (m *UnassignRepair) Modify(s *state.State) {
	for _, loc := range m.cleared {
		s.Clear(loc.X, loc.Y, loc.Z, loc.W)
	}
}

func (m *UnassignRepair) Revert(s *state.State) {
	for _, loc := range m.cleared {
		s.Set(loc.X, loc.Y, loc.Z, loc.W)
	}
}

// axisRange returns [pinned] if the violation pins this axis to one
// coordinate, or the full [0,size) range otherwise.
func axisRange(pinned bool, coord, size uint64) []uint64 {
	if pinned {
		return []uint64{coord}
	}
	out := make([]uint64, size)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}
