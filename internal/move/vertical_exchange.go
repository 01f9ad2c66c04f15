package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// VerticalExchange is HorizontalExchange's dual over Z: it fixes two
// random days and swaps everything (x,w) over a contiguous window of
// employees between them, rather than fixing two employees and swapping
// over a window of days.
type VerticalExchange struct {
	z1, z2   uint64
	y0, yLen uint64
	before1  []uint8
	before2  []uint8
}

func NewVerticalExchange() *VerticalExchange { return &VerticalExchange{} }

func (m *VerticalExchange) Configure(s *state.State) {
	sizeY, sizeZ, sizeX, sizeW := s.SizeY(), s.SizeZ(), s.SizeX(), s.SizeW()
	if sizeZ < 2 || sizeY == 0 {
		m.yLen = 0
		return
	}
	m.z1 = uint64(rng.Int64N(int64(sizeZ)))
	m.z2 = uint64(rng.Int64N(int64(sizeZ - 1)))
	if m.z2 >= m.z1 {
		m.z2++
	}
	window := min64(maxExchangeWindow, sizeY)
	m.yLen = uint64(1 + rng.Int64N(int64(window)))
	m.y0 = uint64(rng.Int64N(int64(sizeY - m.yLen + 1)))

	n := m.yLen * sizeX * sizeW
	m.before1 = make([]uint8, n)
	m.before2 = make([]uint8, n)
	i := 0
	for dy := uint64(0); dy < m.yLen; dy++ {
		y := m.y0 + dy
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				m.before1[i] = boolToBit(s.Get(x, y, m.z1, w))
				m.before2[i] = boolToBit(s.Get(x, y, m.z2, w))
				i++
			}
		}
	}
}

func (m *VerticalExchange) IsIdentity() bool {
	if m.yLen == 0 {
		return true
	}
	for i := range m.before1 {
		if m.before1[i] != m.before2[i] {
			return false
		}
	}
	return true
}

func (m *VerticalExchange) Modify(s *state.State) {
	if m.yLen == 0 {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	i := 0
	for dy := uint64(0); dy < m.yLen; dy++ {
		y := m.y0 + dy
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Assign(x, y, m.z1, w, m.before2[i])
				s.Assign(x, y, m.z2, w, m.before1[i])
				i++
			}
		}
	}
}

func (m *VerticalExchange) Revert(s *state.State) {
	if m.yLen == 0 {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	i := 0
	for dy := uint64(0); dy < m.yLen; dy++ {
		y := m.y0 + dy
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Assign(x, y, m.z1, w, m.before1[i])
				s.Assign(x, y, m.z2, w, m.before2[i])
				i++
			}
		}
	}
}
