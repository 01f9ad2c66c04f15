// Package state implements the four-dimensional assignment tensor
// (shift, employee, day, skill) and its axis algebra, wrapping a
// bitstore.Store with lexicographic indexing and plane/line projections.
package state

// Size describes the extents of the four assignment axes: X=shifts,
// Y=employees, Z=days, W=skills.
type Size struct {
	X, Y, Z, W uint64
}

// Volume returns the total number of addressable bits.
func (s Size) Volume() uint64 { return s.X * s.Y * s.Z * s.W }

// Offset returns the flat offset of the (x,y) plane's first bit within a
// tensor of this size, i.e. ((x*Y+y)*Z)*W.
func (s Size) Offset(x, y uint64) uint64 {
	return ((x*s.Y + y) * s.Z) * s.W
}

// OffsetXYZ returns the flat offset of the (x,y,z) line's first bit.
func (s Size) OffsetXYZ(x, y, z uint64) uint64 {
	return ((x*s.Y+y)*s.Z + z) * s.W
}

// Index returns the flat bit index of (x,y,z,w).
func (s Size) Index(x, y, z, w uint64) uint64 {
	return ((x*s.Y+y)*s.Z+z)*s.W + w
}
