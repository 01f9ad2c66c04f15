package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// RankedIntersectionToggle is the repair attached to ShiftCoverage: given
// a coverage violation pinned at (x,z), it reads the violation's info byte
// to pick a direction — on a shortfall it picks a random employee not
// already covering shift x on day z and toggles that bit on, on an
// overstaffed cell it picks a random employee who is covering it and
// toggles their bit off — the employee-with-capacity × shift-needing-
// coverage intersection. Ranking candidates by remaining workload
// capacity would require threading EmploymentMaxDuration's per-employee
// totals into the move layer; absent that coupling this move samples
// uniformly instead, which still converges the coverage defect without
// entangling two constraints' internal state.
type RankedIntersectionToggle struct {
	loc        location
	prev       uint8
	extLoc     location
	extPrev    uint8
	hasExt     bool
	applicable bool
}

func NewRankedIntersectionToggle() *RankedIntersectionToggle {
	return &RankedIntersectionToggle{}
}

func (m *RankedIntersectionToggle) ConfigureForViolation(v constraint.Violation, s *state.State) {
	m.applicable = false
	if !v.HasX() || !v.HasZ() {
		return
	}
	x, z := v.X, v.Z
	sizeY, sizeW := s.SizeY(), s.SizeW()
	if sizeY == 0 || sizeW == 0 {
		return
	}
	wantAssigned := v.Info == constraint.CoverageOver
	var candidates []uint64
	for y := uint64(0); y < sizeY; y++ {
		if s.GetXYZ(x, y, z) == wantAssigned {
			candidates = append(candidates, y)
		}
	}
	if len(candidates) == 0 {
		return
	}
	y := candidates[rng.Int64N(int64(len(candidates)))]
	var w uint64
	if wantAssigned {
		set := s.CollectSetW(x, y, z)
		w = set[rng.Int64N(int64(len(set)))]
	} else {
		w = uint64(rng.Int64N(int64(sizeW)))
	}

	m.loc = location{x, y, z, w}
	m.prev = boolToBit(s.Get(x, y, z, w))
	m.applicable = true

	m.hasExt = false
	if z+1 < s.SizeZ() && rng.IntN(2) == 0 {
		m.extLoc = location{x, y, z + 1, w}
		m.extPrev = boolToBit(s.Get(x, y, z+1, w))
		m.hasExt = true
	}
}

func (m *RankedIntersectionToggle) IsIdentity() bool { return !m.applicable }

func (m *RankedIntersectionToggle) Modify(s *state.State) {
	if !m.applicable {
		return
	}
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev^1)
	if m.hasExt {
		s.Assign(m.extLoc.X, m.extLoc.Y, m.extLoc.Z, m.extLoc.W, m.extPrev^1)
	}
}

func (m *RankedIntersectionToggle) Revert(s *state.State) {
	if !m.applicable {
		return
	}
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev)
	if m.hasExt {
		s.Assign(m.extLoc.X, m.extLoc.Y, m.extLoc.Z, m.extLoc.W, m.extPrev)
	}
}
