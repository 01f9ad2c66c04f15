package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// maxExchangeWindow bounds how many days (or employees, for
// VerticalExchange) a single exchange move touches, keeping one step's
// blast radius small enough that most candidates stay locally evaluable.
const maxExchangeWindow = 7

// HorizontalExchange swaps the assignments of two random employee rows
// over a contiguous window of days: everything (x,w) that employee y1 had
// on [z0,z0+len) is handed to y2 and vice versa.
type HorizontalExchange struct {
	y1, y2   uint64
	z0, zLen uint64
	before1  []uint8
	before2  []uint8
}

func NewHorizontalExchange() *HorizontalExchange { return &HorizontalExchange{} }

func (m *HorizontalExchange) Configure(s *state.State) {
	sizeY, sizeZ, sizeX, sizeW := s.SizeY(), s.SizeZ(), s.SizeX(), s.SizeW()
	if sizeY < 2 || sizeZ == 0 {
		m.zLen = 0
		return
	}
	m.y1 = uint64(rng.Int64N(int64(sizeY)))
	m.y2 = uint64(rng.Int64N(int64(sizeY - 1)))
	if m.y2 >= m.y1 {
		m.y2++
	}
	window := min64(maxExchangeWindow, sizeZ)
	m.zLen = uint64(1 + rng.Int64N(int64(window)))
	m.z0 = uint64(rng.Int64N(int64(sizeZ - m.zLen + 1)))

	n := m.zLen * sizeX * sizeW
	m.before1 = make([]uint8, n)
	m.before2 = make([]uint8, n)
	i := 0
	for dz := uint64(0); dz < m.zLen; dz++ {
		z := m.z0 + dz
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				m.before1[i] = boolToBit(s.Get(x, m.y1, z, w))
				m.before2[i] = boolToBit(s.Get(x, m.y2, z, w))
				i++
			}
		}
	}
}

func (m *HorizontalExchange) IsIdentity() bool {
	if m.zLen == 0 {
		return true
	}
	for i := range m.before1 {
		if m.before1[i] != m.before2[i] {
			return false
		}
	}
	return true
}

func (m *HorizontalExchange) Modify(s *state.State) {
	if m.zLen == 0 {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	i := 0
	for dz := uint64(0); dz < m.zLen; dz++ {
		z := m.z0 + dz
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Assign(x, m.y1, z, w, m.before2[i])
				s.Assign(x, m.y2, z, w, m.before1[i])
				i++
			}
		}
	}
}

func (m *HorizontalExchange) Revert(s *state.State) {
	if m.zLen == 0 {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	i := 0
	for dz := uint64(0); dz < m.zLen; dz++ {
		z := m.z0 + dz
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Assign(x, m.y1, z, w, m.before1[i])
				s.Assign(x, m.y2, z, w, m.before2[i])
				i++
			}
		}
	}
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
