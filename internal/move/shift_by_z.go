package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// maxShiftOffset bounds how many days a ShiftByZ move may slide a chain.
const maxShiftOffset = 3

// ShiftByZ picks a random employee with at least one assignment, finds the
// maximal contiguous run of days around a random anchor within which that
// employee has some assignment, and slides the whole run's (x,w) pattern
// forward or backward by a few days, clearing whatever the run vacates.
type ShiftByZ struct {
	y              uint64
	runStart, runEnd uint64 // [runStart,runEnd) in original coordinates
	offset         int64
	// snapshot of every (x,z,w) touched, for both the source and
	// destination day ranges, keyed by the union of days spanned.
	loBound, hiBound uint64 // union range [loBound,hiBound)
	before           []uint8
	applicable       bool
}

func NewShiftByZ() *ShiftByZ { return &ShiftByZ{} }

func (m *ShiftByZ) Configure(s *state.State) {
	m.applicable = false
	sizeY, sizeZ := s.SizeY(), s.SizeZ()
	if sizeY == 0 || sizeZ < 2 {
		return
	}
	y := uint64(rng.Int64N(int64(sizeY)))
	anchor := uint64(rng.Int64N(int64(sizeZ)))
	if !s.GetYZAny(y, anchor) {
		return
	}
	runStart, runEnd := anchor, anchor+1
	for runStart > 0 && s.GetYZAny(y, runStart-1) {
		runStart--
	}
	for runEnd < sizeZ && s.GetYZAny(y, runEnd) {
		runEnd++
	}

	maxOffset := min64(maxShiftOffset, sizeZ)
	offset := int64(1 + rng.Int64N(int64(maxOffset)))
	if rng.IntN(2) == 0 {
		offset = -offset
	}
	newStart := int64(runStart) + offset
	newEnd := int64(runEnd) + offset
	if newStart < 0 || uint64(newEnd) > sizeZ {
		return
	}

	m.y = y
	m.runStart, m.runEnd = runStart, runEnd
	m.offset = offset
	m.loBound = min64(runStart, uint64(newStart))
	m.hiBound = maxU64(runEnd, uint64(newEnd))
	m.applicable = true

	sizeX, sizeW := s.SizeX(), s.SizeW()
	n := (m.hiBound - m.loBound) * sizeX * sizeW
	m.before = make([]uint8, n)
	i := 0
	for z := m.loBound; z < m.hiBound; z++ {
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				m.before[i] = boolToBit(s.Get(x, m.y, z, w))
				i++
			}
		}
	}
}

func (m *ShiftByZ) ConfigureIfApplicable(s *state.State) bool {
	m.Configure(s)
	return m.applicable
}

func (m *ShiftByZ) IsIdentity() bool { return !m.applicable || m.offset == 0 }

func (m *ShiftByZ) Modify(s *state.State) {
	if !m.applicable {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	for z := m.loBound; z < m.hiBound; z++ {
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Clear(x, m.y, z, w)
			}
		}
	}
	for z := m.runStart; z < m.runEnd; z++ {
		dz := uint64(int64(z) + m.offset)
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				if bit := m.beforeAt(z, x, w, sizeX, sizeW); bit == 1 {
					s.Set(x, m.y, dz, w)
				}
			}
		}
	}
}

func (m *ShiftByZ) beforeAt(z, x, w, sizeX, sizeW uint64) uint8 {
	idx := (z-m.loBound)*sizeX*sizeW + x*sizeW + w
	return m.before[idx]
}

func (m *ShiftByZ) Revert(s *state.State) {
	if !m.applicable {
		return
	}
	sizeX, sizeW := s.SizeX(), s.SizeW()
	i := 0
	for z := m.loBound; z < m.hiBound; z++ {
		for x := uint64(0); x < sizeX; x++ {
			for w := uint64(0); w < sizeW; w++ {
				s.Assign(x, m.y, z, w, m.before[i])
				i++
			}
		}
	}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
