package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// maxToggleWindow bounds how many consecutive days one toggle may span.
const maxToggleWindow = 3

// RandomAssignmentToggle flips one random bit of the tensor, the baseline
// autonomous move used when no constraint offers a more targeted repair.
// Half the time it extends the flip over a short window of consecutive
// days at the same (shift, employee, skill), so the move can seed or
// erase a multi-day run in one step instead of one bit at a time.
type RandomAssignmentToggle struct {
	loc  location
	zLen uint64
	prev []uint8
}

func NewRandomAssignmentToggle() *RandomAssignmentToggle { return &RandomAssignmentToggle{} }

func (m *RandomAssignmentToggle) Configure(s *state.State) {
	sizeZ := s.SizeZ()
	m.loc = location{
		X: uint64(rng.Int64N(int64(s.SizeX()))),
		Y: uint64(rng.Int64N(int64(s.SizeY()))),
		Z: uint64(rng.Int64N(int64(sizeZ))),
		W: uint64(rng.Int64N(int64(s.SizeW()))),
	}
	m.zLen = 1
	if rng.IntN(2) == 0 {
		window := min64(maxToggleWindow, sizeZ-m.loc.Z)
		if window > 1 {
			m.zLen = uint64(1 + rng.Int64N(int64(window)))
		}
	}
	m.prev = m.prev[:0]
	for dz := uint64(0); dz < m.zLen; dz++ {
		m.prev = append(m.prev, boolToBit(s.Get(m.loc.X, m.loc.Y, m.loc.Z+dz, m.loc.W)))
	}
}

func (m *RandomAssignmentToggle) IsIdentity() bool { return false }

func (m *RandomAssignmentToggle) Modify(s *state.State) {
	for dz := uint64(0); dz < m.zLen; dz++ {
		s.Assign(m.loc.X, m.loc.Y, m.loc.Z+dz, m.loc.W, m.prev[dz]^1)
	}
}

func (m *RandomAssignmentToggle) Revert(s *state.State) {
	for dz := uint64(0); dz < m.zLen; dz++ {
		s.Assign(m.loc.X, m.loc.Y, m.loc.Z+dz, m.loc.W, m.prev[dz])
	}
}
