package constraint

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// EmployeeAvailability scores assignments against each employee's
// paid/unpaid unavailability windows, their desired windows, and their
// per-day specific requests (which may themselves be desired or
// undesired, each carrying its own signed weight).
type EmployeeAvailability struct {
	unavailable *bitstore.Matrix3D // (x,y,z)
	desired     *bitstore.Matrix3D // (x,y,z)
	specific    map[[3]uint64]float32 // (x,y,z) -> signed weight, 0 entries omitted
	sizeX, sizeY, sizeZ uint64
}

func NewEmployeeAvailability(shifts []*domain.Shift, employees []*domain.Employee, days []domain.Day, loc *time.Location) *EmployeeAvailability {
	sizeX, sizeY, sizeZ := uint64(len(shifts)), uint64(len(employees)), uint64(len(days))
	c := &EmployeeAvailability{
		unavailable: bitstore.NewMatrix3D(sizeX, sizeY, sizeZ),
		desired:     bitstore.NewMatrix3D(sizeX, sizeY, sizeZ),
		specific:    map[[3]uint64]float32{},
		sizeX: sizeX, sizeY: sizeY, sizeZ: sizeZ,
	}
	for x := uint64(0); x < sizeX; x++ {
		for z := uint64(0); z < sizeZ; z++ {
			shiftRange := shifts[x].Interval.ToRange(days[z].Range.Start, loc)
			for y := uint64(0); y < sizeY; y++ {
				avail := employees[y].Availability
				if avail.PaidUnavailable.Intersects(shiftRange) || avail.UnpaidUnavailable.Intersects(shiftRange) {
					c.unavailable.Set(x, y, z)
				} else if avail.Desired.Intersects(shiftRange) {
					c.desired.Set(x, y, z)
				}
			}
		}
	}
	for y := uint64(0); y < sizeY; y++ {
		for _, req := range employees[y].Availability.Specific {
			if req.AnyShift {
				for x := uint64(0); x < sizeX; x++ {
					c.specific[[3]uint64{x, y, req.DayIndex}] = req.Weight
				}
			} else {
				c.specific[[3]uint64{req.ShiftIndex, y, req.DayIndex}] = req.Weight
			}
		}
	}
	return c
}

func (c *EmployeeAvailability) Name() string { return "EMPLOYEE_AVAILABILITY" }

func (c *EmployeeAvailability) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	for x := uint64(0); x < c.sizeX; x++ {
		for y := uint64(0); y < c.sizeY; y++ {
			for z := uint64(0); z < c.sizeZ; z++ {
				if !s.GetXYZ(x, y, z) {
					continue
				}
				if c.unavailable.Get(x, y, z) {
					total.Violate(violationXYZ(x, y, z, Score{Hard: -1}))
				} else if c.desired.Get(x, y, z) {
					total.AddScore(Score{Soft: 1})
				}
				if weight, ok := c.specific[[3]uint64{x, y, z}]; ok && weight != 0 {
					if weight < 0 {
						total.Violate(violationXYZ(x, y, z, Score{Soft: int64(weight)}))
					} else {
						total.AddScore(Score{Soft: int64(weight)})
					}
				}
			}
		}
	}
	return total
}
