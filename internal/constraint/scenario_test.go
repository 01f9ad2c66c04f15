package constraint_test

import (
	"testing"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// buildInstance assembles a state plus axes for the given shifts over a
// numDays horizon starting on a Monday, one employee and one skill unless
// the caller adds more.
func buildInstance(t *testing.T, shifts []*domain.Shift, employees []*domain.Employee, numDays uint64) (*state.State, []domain.Day) {
	t.Helper()
	loc := time.UTC
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, loc) // Monday
	horizon := timemodel.Range{Start: start, End: start.AddDate(0, 0, int(numDays))}
	days := domain.BuildDays(horizon, numDays, loc)
	skills := []domain.Skill{{Index: 0, Name: "GENERAL"}}
	axes := &domain.Axes{Shifts: shifts, Employees: employees, Days: days, Skills: skills}
	size := state.Size{X: uint64(len(shifts)), Y: uint64(len(employees)), Z: numDays, W: 1}
	return state.New(size, horizon, loc, axes), days
}

func TestEmptyStateHasNoOverlaps(t *testing.T) {
	shift := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "DAY", 1, 1, 0, 0)
	emp := domain.NewEmployee(0, "Alice")
	st, _ := buildInstance(t, []*domain.Shift{shift}, []*domain.Employee{emp}, 1)

	c := constraint.NewNoOverlap([]*domain.Shift{shift})
	score := c.Evaluate(st)
	if score.Score != (constraint.Score{}) {
		t.Fatalf("empty state should score zero, got %+v", score.Score)
	}
	if len(score.Violations) != 0 {
		t.Fatalf("empty state should produce no violations, got %d", len(score.Violations))
	}
}

func TestOverlappingAssignmentsPenalizeBothShifts(t *testing.T) {
	s1 := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "EARLY", 1, 1, 0, 0)
	s2 := domain.NewShift(1, domain.AllWeekdays, timemodel.MustParseDailyInterval("12:00", "20:00"), "LATE", 1, 1, 0, 0)
	emp := domain.NewEmployee(0, "Alice")
	st, _ := buildInstance(t, []*domain.Shift{s1, s2}, []*domain.Employee{emp}, 1)

	st.Set(0, 0, 0, 0)
	st.Set(1, 0, 0, 0)

	c := constraint.NewNoOverlap([]*domain.Shift{s1, s2})
	score := c.Evaluate(st)
	if len(score.Violations) < 2 {
		t.Fatalf("expected a violation per overlapping assignment, got %d", len(score.Violations))
	}
	if score.Score.Hard != -2 {
		t.Fatalf("expected hard = -2 for one overlapping pair, got %d", score.Score.Hard)
	}
}

func TestCoverageShortfallScalesWithDuration(t *testing.T) {
	shift := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "DAY", 3, 3, 0, 0)
	emp := domain.NewEmployee(0, "Alice")
	st, days := buildInstance(t, []*domain.Shift{shift}, []*domain.Employee{emp}, 1)

	st.Set(0, 0, 0, 0)

	c := constraint.NewShiftCoverage(st.Size(), []*domain.Shift{shift}, days, time.UTC)
	score := c.Evaluate(st)
	if score.Score.Hard != -960 {
		t.Fatalf("expected hard = -(3-1)*480 = -960, got %d", score.Score.Hard)
	}
	if len(score.Violations) != 1 {
		t.Fatalf("expected exactly one shortfall violation, got %d", len(score.Violations))
	}
	if score.Violations[0].Info != constraint.CoverageUnder {
		t.Fatalf("expected an understaffed violation")
	}
}

func TestUnassignRepairRemovesSkillViolation(t *testing.T) {
	shift := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "DAY", 1, 1, 0, 0)
	shift.AddRequiredAllSkill(0, 1.0)
	emp := domain.NewEmployee(0, "Alice") // lacks skill 0
	st, _ := buildInstance(t, []*domain.Shift{shift}, []*domain.Employee{emp}, 1)

	st.Set(0, 0, 0, 0)

	c := constraint.NewRequiredSkill([]*domain.Shift{shift}, []*domain.Employee{emp}, []domain.Skill{{Index: 0, Name: "GENERAL"}})
	score := c.Evaluate(st)
	if len(score.Violations) != 1 {
		t.Fatalf("expected one violation for the unskilled assignment, got %d", len(score.Violations))
	}
	v := score.Violations[0]
	if v.X != 0 || v.Y != 0 || v.Z != 0 || v.W != 0 {
		t.Fatalf("expected violation pinned at the offending bit, got %+v", v)
	}

	repair := move.NewUnassignRepair()
	repair.ConfigureForViolation(v, st)
	repair.Modify(st)

	after := c.Evaluate(st)
	if after.Score.Hard != 0 {
		t.Fatalf("expected the repair to clear the skill violation, got hard %d", after.Score.Hard)
	}

	repair.Revert(st)
	if !st.Get(0, 0, 0, 0) {
		t.Fatalf("expected revert to restore the assignment")
	}
}

func TestEvaluationIsPure(t *testing.T) {
	s1 := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "EARLY", 1, 1, 60, 60)
	s2 := domain.NewShift(1, domain.AllWeekdays, timemodel.MustParseDailyInterval("12:00", "20:00"), "LATE", 1, 1, 60, 60)
	emp := domain.NewEmployee(0, "Alice")
	st, days := buildInstance(t, []*domain.Shift{s1, s2}, []*domain.Employee{emp}, 3)
	st.Random(0.5)

	evaluator := constraint.NewEvaluator([]constraint.Constraint{
		constraint.NewNoOverlap([]*domain.Shift{s1, s2}),
		constraint.NewRestBetweenShifts([]*domain.Shift{s1, s2}),
		constraint.NewShiftCoverage(st.Size(), []*domain.Shift{s1, s2}, days, time.UTC),
	})

	before := st.BitStore().Hash()
	first, _ := evaluator.Evaluate(st)
	second, _ := evaluator.Evaluate(st.Clone())
	if first != second {
		t.Fatalf("evaluating a clone must give the same score: %+v vs %+v", first, second)
	}
	if st.BitStore().Hash() != before {
		t.Fatalf("evaluation must not mutate the state")
	}
}

func TestWorkloadOverrunEmitsEmployeeSkillViolation(t *testing.T) {
	shift := domain.NewShift(0, domain.AllWeekdays, timemodel.MustParseDailyInterval("08:00", "16:00"), "DAY", 1, 1, 0, 0)
	emp := domain.NewEmployee(0, "Alice")
	emp.SetSkill(0, domain.EmployeeSkill{
		Weight:   1.0,
		Strategy: domain.WorkloadDynamic,
		Workload: domain.WorkloadEvent{DynamicLoadHours: 8, MaxOvertimeHours: 0},
	})
	st, days := buildInstance(t, []*domain.Shift{shift}, []*domain.Employee{emp}, 3)

	for z := uint64(0); z < 3; z++ {
		st.Set(0, 0, z, 0)
	}

	c := constraint.NewEmploymentMaxDuration([]*domain.Shift{shift}, []*domain.Employee{emp}, []domain.Skill{{Index: 0, Name: "GENERAL"}}, days, time.UTC)
	score := c.Evaluate(st)
	if score.Score.Strict >= 0 {
		t.Fatalf("expected a strict violation for 24h of work against an 8h cap, got %+v", score.Score)
	}
	if len(score.Violations) != 1 {
		t.Fatalf("expected one employee-skill violation, got %d", len(score.Violations))
	}
	v := score.Violations[0]
	if !v.HasY() || !v.HasW() || v.HasX() || v.HasZ() {
		t.Fatalf("expected violation pinned on (y,w) only, got flags %b", v.Flags)
	}
}
