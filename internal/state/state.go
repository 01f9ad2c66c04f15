package state

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// State is the four-dimensional assignment tensor: bit (x,y,z,w) set means
// "employee y, on day z, is covering shift x with skill w". It wraps a
// bitstore.Store, which is its sole owner of the raw bits, plus a borrowed
// reference to the solver's axes and planning horizon.
type State struct {
	size Size

	horizon  timemodel.Range
	location *time.Location

	axes *domain.Axes

	bits *bitstore.Store
}

// New constructs a State of the given size, all assignments cleared.
func New(size Size, horizon timemodel.Range, location *time.Location, axes *domain.Axes) *State {
	return &State{
		size:     size,
		horizon:  horizon,
		location: location,
		axes:     axes,
		bits:     bitstore.New(size.Volume()),
	}
}

func (s *State) Size() Size                   { return s.size }
func (s *State) SizeX() uint64                 { return s.size.X }
func (s *State) SizeY() uint64                 { return s.size.Y }
func (s *State) SizeZ() uint64                 { return s.size.Z }
func (s *State) SizeW() uint64                 { return s.size.W }
func (s *State) Horizon() timemodel.Range      { return s.horizon }
func (s *State) Location() *time.Location      { return s.location }
func (s *State) Axes() *domain.Axes            { return s.axes }
func (s *State) BitStore() *bitstore.Store     { return s.bits }

// Clone returns an independent deep copy of the state (axes and horizon
// remain shared, bits are copied).
func (s *State) Clone() *State {
	return &State{
		size:     s.size,
		horizon:  s.horizon,
		location: s.location,
		axes:     s.axes,
		bits:     s.bits.Clone(),
	}
}

// CloneFrom overwrites the receiver's assignment bits from other, which
// must share the same size. Used by search tasks to avoid reallocating a
// fresh Store on every accepted candidate.
func (s *State) CloneFrom(other *State) {
	s.bits.CloneFrom(other.bits)
}

func (s *State) Get(x, y, z, w uint64) bool {
	return s.bits.Get(s.size.Index(x, y, z, w))
}

func (s *State) Set(x, y, z, w uint64) {
	s.bits.Set(s.size.Index(x, y, z, w))
}

func (s *State) Clear(x, y, z, w uint64) {
	s.bits.Clear(s.size.Index(x, y, z, w))
}

func (s *State) Assign(x, y, z, w uint64, value uint8) {
	s.bits.Assign(s.size.Index(x, y, z, w), value)
}

func (s *State) Toggle(x, y, z, w uint64) {
	s.bits.Toggle(s.size.Index(x, y, z, w))
}

// GetXYZ reports whether any skill is assigned at (x,y,z).
func (s *State) GetXYZ(x, y, z uint64) bool {
	return s.bits.Test(s.size.OffsetXYZ(x, y, z), s.size.W)
}

// GetXZ reports whether any employee (with any skill) covers shift x on
// day z.
func (s *State) GetXZ(x, z uint64) bool {
	for y := uint64(0); y < s.size.Y; y++ {
		if s.GetXYZ(x, y, z) {
			return true
		}
	}
	return false
}

// GetYZAny reports whether employee y has any assignment at all (any
// shift, any skill) on day z.
func (s *State) GetYZAny(y, z uint64) bool {
	for x := uint64(0); x < s.size.X; x++ {
		if s.GetXYZ(x, y, z) {
			return true
		}
	}
	return false
}

// SetAll sets every bit.
func (s *State) SetAll() { s.bits.SetAll() }

// ClearAll clears every bit.
func (s *State) ClearAll() { s.bits.ClearAll() }

// Random fills every bit independently with probability p.
func (s *State) Random(p float64) { s.bits.Random(p) }

// Plane projections. A plane is a flat bit-vector over the two retained
// axes in row-major order; the extractors copy out of (and AssignPlaneYW
// back into) the tensor using the bitstore's strided bulk copy, since for
// fixed (x,y,z) the W-line is contiguous and every other axis advances the
// flat index by a fixed stride.

// GetPlaneXW copies the X*W plane at fixed (y,z) into dst: bit x*W+w
// mirrors Get(x,y,z,w). dst must hold at least X*W bits.
func (s *State) GetPlaneXW(dst *bitstore.Store, y, z uint64) {
	for x := uint64(0); x < s.size.X; x++ {
		s.bits.CopyTo(dst, s.size.OffsetXYZ(x, y, z), 1, x*s.size.W, s.size.W)
	}
}

// GetPlaneYW copies the Y*W plane at fixed (x,z) into dst: bit y*W+w
// mirrors Get(x,y,z,w). dst must hold at least Y*W bits.
func (s *State) GetPlaneYW(dst *bitstore.Store, x, z uint64) {
	for y := uint64(0); y < s.size.Y; y++ {
		s.bits.CopyTo(dst, s.size.OffsetXYZ(x, y, z), 1, y*s.size.W, s.size.W)
	}
}

// GetPlaneXY copies the X*Y plane at fixed (z,w) into dst: bit x*Y+y
// mirrors Get(x,y,z,w). Because (x*Y+y) is the leading factor of the flat
// index, the whole plane is one strided copy. dst must hold at least X*Y
// bits.
func (s *State) GetPlaneXY(dst *bitstore.Store, z, w uint64) {
	stride := s.size.Z * s.size.W
	s.bits.CopyTo(dst, z*s.size.W+w, stride, 0, s.size.X*s.size.Y)
}

// AssignPlaneYW overwrites the Y*W plane at fixed (x,z) from src, the
// inverse of GetPlaneYW.
func (s *State) AssignPlaneYW(src *bitstore.Store, x, z uint64) {
	for y := uint64(0); y < s.size.Y; y++ {
		src.CopyTo(s.bits, y*s.size.W, 1, s.size.OffsetXYZ(x, y, z), s.size.W)
	}
}

// FillPlaneYW sets every (y,w) bit at fixed x,z to value.
func (s *State) FillPlaneYW(x, z uint64, value uint8) {
	for y := uint64(0); y < s.size.Y; y++ {
		for w := uint64(0); w < s.size.W; w++ {
			s.Assign(x, y, z, w, value)
		}
	}
}

// ClearPlaneYW clears every (y,w) bit at fixed x,z — used by repair
// perturbators that unassign an entire shift-day slab.
func (s *State) ClearPlaneYW(x, z uint64) {
	s.FillPlaneYW(x, z, 0)
}

// CollectSetW returns the set of skill indices w for which (x,y,z,w) is
// assigned.
func (s *State) CollectSetW(x, y, z uint64) []uint64 {
	var out []uint64
	for w := uint64(0); w < s.size.W; w++ {
		if s.Get(x, y, z, w) {
			out = append(out, w)
		}
	}
	return out
}
