package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// AddCoverShifts is the repair-slot counterpart to RandomAssignmentToggle:
// it is attached to ShiftCoverage so a targeted repair pass always has a
// move available even though the repair doesn't actually aim at the
// violation's own coordinates — it still perturbs a uniformly random cell,
// on the premise that any coverage deficit benefits from more entropy
// somewhere in the tensor. It doubles as a plain autonomous move in the
// round-robin pool, where the missing violation context changes nothing.
type AddCoverShifts struct {
	loc  location
	prev uint8
}

func NewAddCoverShifts() *AddCoverShifts { return &AddCoverShifts{} }

func (m *AddCoverShifts) ConfigureForViolation(_ constraint.Violation, s *state.State) {
	m.Configure(s)
}

func (m *AddCoverShifts) Configure(s *state.State) {
	m.loc = location{
		X: uint64(rng.Int64N(int64(s.SizeX()))),
		Y: uint64(rng.Int64N(int64(s.SizeY()))),
		Z: uint64(rng.Int64N(int64(s.SizeZ()))),
		W: uint64(rng.Int64N(int64(s.SizeW()))),
	}
	if s.Get(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W) {
		m.prev = 1
	} else {
		m.prev = 0
	}
}

func (m *AddCoverShifts) IsIdentity() bool { return false }

func (m *AddCoverShifts) Modify(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev^1)
}

func (m *AddCoverShifts) Revert(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev)
}
