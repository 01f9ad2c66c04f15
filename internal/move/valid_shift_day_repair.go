package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// ValidShiftDayRepair unassigns an entire (x,z) slab across every employee
// and skill — the repair attached to ValidShiftDay, whose violations are
// always pinned on X and Z alone (the whole shift/day is ineligible, not
// one cell of it).
type ValidShiftDayRepair struct {
	x, z    uint64
	cleared []location
}

func NewValidShiftDayRepair() *ValidShiftDayRepair { return &ValidShiftDayRepair{} }

func (m *ValidShiftDayRepair) ConfigureForViolation(v constraint.Violation, s *state.State) {
	m.x, m.z = v.X, v.Z
	m.cleared = m.cleared[:0]
	for y := uint64(0); y < s.SizeY(); y++ {
		for w := uint64(0); w < s.SizeW(); w++ {
			if s.Get(m.x, y, m.z, w) {
				m.cleared = append(m.cleared, location{m.x, y, m.z, w})
			}
		}
	}
}

func (m *ValidShiftDayRepair) IsIdentity() bool { return len(m.cleared) == 0 }

func (m *ValidShiftDayRepair) Modify(s *state.State) {
	s.ClearPlaneYW(m.x, m.z)
}

func (m *ValidShiftDayRepair) Revert(s *state.State) {
	for _, loc := range m.cleared {
		s.Set(loc.X, loc.Y, loc.Z, loc.W)
	}
}
