package constraint

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// workloadDurationInRangeMinutes is the reference one-week (168h) load a
// STATIC workload strategy's fraction is measured against.
const workloadDurationInRangeMinutes = 168 * 60

// EmploymentMaxDuration bounds how many minutes of work each employee may
// accrue per skill over the horizon: below the cap there is no penalty,
// past it there is a hard penalty proportional to the overrun, and past
// the overrun allowance there is a strict violation.
type EmploymentMaxDuration struct {
	durationMinutes []int64 // indexed x*sizeZ+z
	sizeX, sizeZ    uint64
	employees       []*domain.Employee
	skills          []domain.Skill
}

func NewEmploymentMaxDuration(shifts []*domain.Shift, employees []*domain.Employee, skills []domain.Skill, days []domain.Day, loc *time.Location) *EmploymentMaxDuration {
	sizeX, sizeZ := uint64(len(shifts)), uint64(len(days))
	c := &EmploymentMaxDuration{
		durationMinutes: make([]int64, sizeX*sizeZ),
		sizeX:           sizeX,
		sizeZ:           sizeZ,
		employees:       employees,
		skills:          skills,
	}
	for x := uint64(0); x < sizeX; x++ {
		for z := uint64(0); z < sizeZ; z++ {
			r := shifts[x].Interval.ToRange(days[z].Range.Start, loc)
			c.durationMinutes[x*sizeZ+z] = int64(r.Duration(loc).Minutes())
		}
	}
	return c
}

func (c *EmploymentMaxDuration) Name() string { return "EMPLOYMENT_MAX_DURATION" }

func (c *EmploymentMaxDuration) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	for y, employee := range c.employees {
		for w := range c.skills {
			skill, has := employee.Skill(uint64(w))
			var maxWorkload, maxOvertime int64
			if has && skill.Strategy != domain.WorkloadNone {
				maxOvertime = int64(skill.Workload.MaxOvertimeHours * 60)
				switch skill.Strategy {
				case domain.WorkloadStatic:
					maxWorkload = int64(workloadDurationInRangeMinutes * skill.Workload.StaticLoad)
				case domain.WorkloadDynamic:
					maxWorkload = int64(skill.Workload.DynamicLoadHours * 60)
				}
			}

			var totalDuration int64
			for x := uint64(0); x < c.sizeX; x++ {
				for z := uint64(0); z < c.sizeZ; z++ {
					if s.Get(x, uint64(y), z, uint64(w)) {
						totalDuration += c.durationMinutes[x*c.sizeZ+z]
					}
				}
			}

			diff := maxWorkload - totalDuration
			if diff < 0 {
				var delta Score
				overtimeDiff := diff + maxOvertime
				if overtimeDiff < 0 {
					delta.Strict = -1
				} else {
					delta.Hard = 2 * diff
				}
				// Pinned on (y,w) only: the overrun belongs to the whole
				// employee-skill plane, so a repair may unassign any of
				// its bits.
				total.Violate(Violation{Y: uint64(y), W: uint64(w), Flags: FlagY | FlagW, Delta: delta})
			}
		}
	}
	return total
}
