package constraint

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// RequiredSkill forbids every (shift, employee, skill) assignment that
// isAssignable rejects: the employee lacks the assigned skill, holds one
// of the shift's required-all skills below its minimum weight, or uses a
// skill outside the shift's non-empty required-one set.
type RequiredSkill struct {
	assignable   *bitstore.Matrix3D // (x,y,w) -> may employee y be assigned to shift x under skill w
	sizeX, sizeY, sizeW uint64
}

func NewRequiredSkill(shifts []*domain.Shift, employees []*domain.Employee, skills []domain.Skill) *RequiredSkill {
	sizeX, sizeY, sizeW := uint64(len(shifts)), uint64(len(employees)), uint64(len(skills))
	c := &RequiredSkill{
		assignable: bitstore.NewMatrix3D(sizeX, sizeY, sizeW),
		sizeX:      sizeX, sizeY: sizeY, sizeW: sizeW,
	}
	for x := uint64(0); x < sizeX; x++ {
		shift := shifts[x]
		for y := uint64(0); y < sizeY; y++ {
			employee := employees[y]
			for w := uint64(0); w < sizeW; w++ {
				if isAssignable(shift, employee, w) {
					c.assignable.Set(x, y, w)
				}
			}
		}
	}
	return c
}

// isAssignable reports whether employee may cover shift under skill w: a
// skill-free shift takes anyone; otherwise the employee must hold w, must
// clear the minimum weight of every skill in the required-all set, and —
// when a required-one set exists — w itself must be one of its members.
// The one-of-many check deliberately skips the member's minimum weight:
// holding the skill at any weight qualifies.
func isAssignable(shift *domain.Shift, employee *domain.Employee, w uint64) bool {
	if !shift.RequiresSkill() {
		return true
	}
	if !employee.HasSkill(w) {
		return false
	}
	for requiredSkill, minWeight := range shift.RequiredAllSkills {
		held, has := employee.Skill(requiredSkill)
		if !has || held.Weight < minWeight {
			return false
		}
	}
	if len(shift.RequiredOneSkills) > 0 {
		if _, wants := shift.RequiredOneSkills[w]; !wants {
			return false
		}
	}
	return true
}

func (c *RequiredSkill) Name() string { return "REQUIRED_SKILL" }

func (c *RequiredSkill) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	sizeZ := s.SizeZ()
	for x := uint64(0); x < c.sizeX; x++ {
		for y := uint64(0); y < c.sizeY; y++ {
			for w := uint64(0); w < c.sizeW; w++ {
				if c.assignable.Get(x, y, w) {
					continue
				}
				for z := uint64(0); z < sizeZ; z++ {
					if s.Get(x, y, z, w) {
						total.Violate(violationXYZW(x, y, z, w, Score{Hard: -1}))
					}
				}
			}
		}
	}
	return total
}
