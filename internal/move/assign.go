package move

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/state"

// location is a single (shift,employee,day,skill) coordinate.
type location struct {
	X, Y, Z, W uint64
}

// Assign sets one bit, reverting to whatever value it held before.
type Assign struct {
	loc  location
	prev uint8
}

func NewAssign(x, y, z, w uint64) *Assign {
	return &Assign{loc: location{x, y, z, w}}
}

func (m *Assign) Configure(s *state.State) {
	if s.Get(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W) {
		m.prev = 1
	} else {
		m.prev = 0
	}
}

func (m *Assign) IsIdentity() bool { return m.prev == 1 }

func (m *Assign) Modify(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, 1)
}

func (m *Assign) Revert(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev)
}

// Unassign clears one bit, reverting to whatever value it held before.
type Unassign struct {
	loc  location
	prev uint8
}

func NewUnassign(x, y, z, w uint64) *Unassign {
	return &Unassign{loc: location{x, y, z, w}}
}

func (m *Unassign) Configure(s *state.State) {
	if s.Get(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W) {
		m.prev = 1
	} else {
		m.prev = 0
	}
}

func (m *Unassign) IsIdentity() bool { return m.prev == 0 }

func (m *Unassign) Modify(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, 0)
}

func (m *Unassign) Revert(s *state.State) {
	s.Assign(m.loc.X, m.loc.Y, m.loc.Z, m.loc.W, m.prev)
}
