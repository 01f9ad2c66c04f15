package constraint

import (
	"testing"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
	"github.com/stretchr/testify/require"
)

func buildSmallFixture(t *testing.T) (*state.State, []*domain.Shift, []*domain.Employee, []domain.Skill, []domain.Day) {
	t.Helper()
	loc := time.UTC
	day := timemodel.MustParseDailyInterval("08:00", "16:00")
	late := timemodel.MustParseDailyInterval("15:00", "23:00")

	s1 := domain.NewShift(0, domain.AllWeekdays, day, "DAY", 1, 1, 60, 60)
	s2 := domain.NewShift(1, domain.AllWeekdays, late, "LATE", 1, 1, 60, 60)
	shifts := []*domain.Shift{s1, s2}

	e1 := domain.NewEmployee(0, "Alice")
	employees := []*domain.Employee{e1}

	skills := []domain.Skill{{Index: 0, Name: "GENERAL"}}

	horizonStart := time.Date(2026, 1, 5, 0, 0, 0, 0, loc) // a Monday
	horizon := timemodel.Range{Start: horizonStart, End: horizonStart.AddDate(0, 0, 3)}
	days := domain.BuildDays(horizon, 3, loc)

	axes := &domain.Axes{Shifts: shifts, Employees: employees, Days: days, Skills: skills}
	size := state.Size{X: 2, Y: 1, Z: 3, W: 1}
	st := state.New(size, horizon, loc, axes)
	return st, shifts, employees, skills, days
}

func TestNoOverlapSameDay(t *testing.T) {
	st, shifts, _, _, _ := buildSmallFixture(t)
	c := NewNoOverlap(shifts)

	st.Set(0, 0, 0, 0)
	score := c.Evaluate(st)
	require.True(t, score.Score.IsZero(), "single assignment should not violate")

	st.Set(1, 0, 0, 0) // DAY and LATE overlap between 15:00 and 16:00
	score = c.Evaluate(st)
	require.Equal(t, int64(-2), score.Score.Hard, "one violation per participating assignment")
}

func TestValidShiftDayBlocksIneligibleWeekday(t *testing.T) {
	st, shifts, _, _, days := buildSmallFixture(t)
	shifts[0].Weekdays = domain.OnlyWeekends // Monday horizon start is not a weekend
	c := NewValidShiftDay(shifts, days)

	st.Set(0, 0, 0, 0)
	score := c.Evaluate(st)
	require.Equal(t, int64(-1), score.Score.Hard)
}

func TestRequiredSkillBlocksUnskilledAssignment(t *testing.T) {
	st, shifts, employees, _, _ := buildSmallFixture(t)
	shifts[0].AddRequiredAllSkill(0, 1.0)
	c := NewRequiredSkill(shifts, employees, []domain.Skill{{Index: 0, Name: "GENERAL"}})

	st.Set(0, 0, 0, 0)
	score := c.Evaluate(st)
	require.Equal(t, int64(-1), score.Score.Hard, "employee lacks required skill")

	employees[0].SetSkill(0, domain.EmployeeSkill{Weight: 1.0})
	c2 := NewRequiredSkill(shifts, employees, []domain.Skill{{Index: 0, Name: "GENERAL"}})
	score2 := c2.Evaluate(st)
	require.True(t, score2.Score.IsZero(), "employee now has the required skill")
}

func TestShiftCoverageUnderstaffed(t *testing.T) {
	st, shifts, _, _, days := buildSmallFixture(t)
	c := NewShiftCoverage(st.Size(), shifts, days, time.UTC)
	score := c.Evaluate(st)
	require.Negative(t, score.Score.Hard, "no assignments yet, required slot unmet")
	for _, v := range score.Violations {
		require.Equal(t, CoverageUnder, v.Info)
	}
}
