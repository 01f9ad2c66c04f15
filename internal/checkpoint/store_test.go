package checkpoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/search"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

func TestSaveLoadRosterRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	loc := time.UTC
	horizon := timemodel.Range{Start: time.Date(2026, 1, 5, 0, 0, 0, 0, loc), End: time.Date(2026, 1, 6, 0, 0, 0, 0, loc)}
	axes := &domain.Axes{
		Shifts:    []*domain.Shift{domain.NewShift(0, domain.AllWeekdays, timemodel.NewDailyInterval(0, 480), "DAY", 1, 1, 0, 0)},
		Employees: []*domain.Employee{domain.NewEmployee(0, "Alice")},
		Days:      domain.BuildDays(horizon, 1, loc),
		Skills:    []domain.Skill{{Index: 0, Name: "DAY"}},
	}
	st := state.New(state.Size{X: 1, Y: 1, Z: 1, W: 1}, horizon, loc, axes)
	st.Set(0, 0, 0, 0)
	score := constraint.Score{Strict: 0, Hard: 0, Soft: -3}

	require.NoError(t, store.SaveRoster("instance-a", st, score))

	loaded, loadedScore, ok, err := store.LoadRoster("instance-a", axes, horizon, loc)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, score, loadedScore)
	require.True(t, loaded.Get(0, 0, 0, 0))
}

func TestLoadRosterMissingIsNotFound(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, _, ok, err := store.LoadRoster("nonexistent", nil, timemodel.Range{}, time.UTC)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAppendAndLoadStats(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	stats := search.NewScoreStatistics()
	stats.Record(5*time.Millisecond, constraint.Score{Hard: -2})
	stats.Record(15*time.Millisecond, constraint.Score{Hard: -1})

	require.NoError(t, store.AppendStat("instance-a", stats))

	loaded, err := store.LoadStats("instance-a")
	require.NoError(t, err)
	require.Len(t, loaded.Samples(), 2)
	require.Equal(t, int64(-1), loaded.Max().Hard)
}
