package constraint

// Axis flag bits for Violation.Flags: a set bit means the violation pins
// that axis to a single coordinate; an unset bit means it spans the axis's
// entire extent.
const (
	FlagX uint8 = 1 << iota
	FlagY
	FlagZ
	FlagW
)

// Violation records one geometric location (or sub-region) of the
// assignment tensor where a constraint is broken, together with the score
// delta it contributes and a free-form info byte some perturbators use to
// disambiguate move direction (e.g. "at capacity" vs "under capacity").
type Violation struct {
	X, Y, Z, W uint64
	Flags      uint8
	Delta      Score
	Info       uint8
}

func (v Violation) HasX() bool { return v.Flags&FlagX != 0 }
func (v Violation) HasY() bool { return v.Flags&FlagY != 0 }
func (v Violation) HasZ() bool { return v.Flags&FlagZ != 0 }
func (v Violation) HasW() bool { return v.Flags&FlagW != 0 }

func violationXZ(x, z uint64, delta Score) Violation {
	return Violation{X: x, Z: z, Flags: FlagX | FlagZ, Delta: delta}
}
func violationYZ(y, z uint64, delta Score) Violation {
	return Violation{Y: y, Z: z, Flags: FlagY | FlagZ, Delta: delta}
}
func violationXYZ(x, y, z uint64, delta Score) Violation {
	return Violation{X: x, Y: y, Z: z, Flags: FlagX | FlagY | FlagZ, Delta: delta}
}
func violationXYZW(x, y, z, w uint64, delta Score) Violation {
	return Violation{X: x, Y: y, Z: z, W: w, Flags: FlagX | FlagY | FlagZ | FlagW, Delta: delta}
}
