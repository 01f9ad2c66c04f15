package domain

// Axes bundles the four ordered entity sequences that index the
// assignment tensor: shifts (X), employees (Y), days (Z), skills (W).
type Axes struct {
	Shifts    []*Shift
	Employees []*Employee
	Days      []Day
	Skills    []Skill
}

func (a Axes) SizeX() uint64 { return uint64(len(a.Shifts)) }
func (a Axes) SizeY() uint64 { return uint64(len(a.Employees)) }
func (a Axes) SizeZ() uint64 { return uint64(len(a.Days)) }
func (a Axes) SizeW() uint64 { return uint64(len(a.Skills)) }
