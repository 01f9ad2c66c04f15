package constraint

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// BuildAll constructs every constraint this system knows about, wired to
// cfg's axes and horizon, in the fixed order cmd/nrpsolve and the test
// fixtures both rely on.
func BuildAll(cfg *domain.Config, size state.Size) []Constraint {
	axes := cfg.Axes
	loc := cfg.Location
	return []Constraint{
		NewNoOverlap(axes.Shifts),
		NewRestBetweenShifts(axes.Shifts),
		NewRequiredSkill(axes.Shifts, axes.Employees, axes.Skills),
		NewShiftCoverage(size, axes.Shifts, axes.Days, loc),
		NewEmploymentMaxDuration(axes.Shifts, axes.Employees, axes.Skills, axes.Days, loc),
		NewEmployeeAvailability(axes.Shifts, axes.Employees, axes.Days, loc),
		NewEmployeeGeneral(axes.Shifts, axes.Employees, axes.Days, loc),
		NewValidShiftDay(axes.Shifts, axes.Days),
		NewCumulativeFatigue(axes.Shifts, axes.Employees, axes.Days, loc),
	}
}
