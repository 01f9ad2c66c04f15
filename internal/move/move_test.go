package move

import (
	"testing"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

func newTestState(t *testing.T, p float64) *state.State {
	t.Helper()
	size := state.Size{X: 4, Y: 5, Z: 6, W: 3}
	horizon := timemodel.Range{Start: time.Now(), End: time.Now().AddDate(0, 0, 6)}
	axes := &domain.Axes{}
	s := state.New(size, horizon, time.UTC, axes)
	s.Random(p)
	return s
}

// assertRevertExact: Configure+Modify followed by Revert must restore
// the state bit-for-bit, checked via the bit-store hash rather than a
// field-by-field comparison.
func assertRevertExact(t *testing.T, name string, s *state.State, configure func(), modify func(*state.State), revert func(*state.State)) {
	t.Helper()
	before := s.BitStore().Hash()
	configure()
	modify(s)
	revert(s)
	after := s.BitStore().Hash()
	if before != after {
		t.Fatalf("%s: modify+revert did not restore state exactly (hash %d != %d)", name, before, after)
	}
}

func TestAssignUnassignRevertExact(t *testing.T) {
	Seed(1, 2)
	s := newTestState(t, 0.3)
	a := NewAssign(0, 0, 0, 0)
	assertRevertExact(t, "Assign", s, func() { a.Configure(s) }, a.Modify, a.Revert)

	u := NewUnassign(1, 1, 1, 1)
	assertRevertExact(t, "Unassign", s, func() { u.Configure(s) }, u.Modify, u.Revert)
}

func TestRandomAssignmentToggleRevertExact(t *testing.T) {
	Seed(3, 4)
	s := newTestState(t, 0.3)
	for i := 0; i < 20; i++ {
		m := NewRandomAssignmentToggle()
		assertRevertExact(t, "RandomAssignmentToggle", s, func() { m.Configure(s) }, m.Modify, m.Revert)
	}
}

func TestHorizontalExchangeRevertExact(t *testing.T) {
	Seed(5, 6)
	s := newTestState(t, 0.3)
	for i := 0; i < 20; i++ {
		m := NewHorizontalExchange()
		assertRevertExact(t, "HorizontalExchange", s, func() { m.Configure(s) }, m.Modify, m.Revert)
	}
}

func TestVerticalExchangeRevertExact(t *testing.T) {
	Seed(7, 8)
	s := newTestState(t, 0.3)
	for i := 0; i < 20; i++ {
		m := NewVerticalExchange()
		assertRevertExact(t, "VerticalExchange", s, func() { m.Configure(s) }, m.Modify, m.Revert)
	}
}

func TestShiftByZRevertExact(t *testing.T) {
	Seed(9, 10)
	s := newTestState(t, 0.4)
	for i := 0; i < 20; i++ {
		m := NewShiftByZ()
		assertRevertExact(t, "ShiftByZ", s, func() { m.Configure(s) }, m.Modify, m.Revert)
	}
}

func TestAddCoverShiftsRevertExact(t *testing.T) {
	Seed(11, 12)
	s := newTestState(t, 0.3)
	for i := 0; i < 20; i++ {
		m := NewAddCoverShifts()
		assertRevertExact(t, "AddCoverShifts", s, func() { m.Configure(s) }, m.Modify, m.Revert)
	}
}

func TestUnassignRepairRevertExact(t *testing.T) {
	Seed(13, 14)
	s := newTestState(t, 0.5)
	v := constraint.Violation{Flags: constraint.FlagX | constraint.FlagZ, X: 0, Z: 0}
	m := NewUnassignRepair()
	assertRevertExact(t, "UnassignRepair", s, func() { m.ConfigureForViolation(v, s) }, m.Modify, m.Revert)
}

func TestValidShiftDayRepairRevertExact(t *testing.T) {
	Seed(15, 16)
	s := newTestState(t, 0.5)
	v := constraint.Violation{Flags: constraint.FlagX | constraint.FlagZ, X: 1, Z: 1}
	m := NewValidShiftDayRepair()
	assertRevertExact(t, "ValidShiftDayRepair", s, func() { m.ConfigureForViolation(v, s) }, m.Modify, m.Revert)
}

func TestRankedIntersectionToggleRevertExact(t *testing.T) {
	Seed(17, 18)
	s := newTestState(t, 0.3)
	v := constraint.Violation{Flags: constraint.FlagX | constraint.FlagZ, X: 2, Z: 2}
	m := NewRankedIntersectionToggle()
	assertRevertExact(t, "RankedIntersectionToggle", s, func() { m.ConfigureForViolation(v, s) }, m.Modify, m.Revert)
}

// TestChainRevertExact: a whole chain must unwind in reverse order back
// to the exact original state.
func TestChainRevertExact(t *testing.T) {
	Seed(19, 20)
	s := newTestState(t, 0.3)
	before := s.BitStore().Hash()

	c := NewChain()
	a := NewRandomAssignmentToggle()
	a.Configure(s)
	c.Append(a)
	h := NewHorizontalExchange()
	h.Configure(s)
	c.Append(h)
	sh := NewShiftByZ()
	sh.Configure(s)
	c.Append(sh)

	c.Modify(s)
	c.Revert(s)

	after := s.BitStore().Hash()
	if before != after {
		t.Fatalf("chain modify+revert did not restore state exactly (hash %d != %d)", before, after)
	}
}

func TestIdentityPerturbatorIsNoop(t *testing.T) {
	s := newTestState(t, 0.3)
	before := s.BitStore().Hash()
	if !Identity.IsIdentity() {
		t.Fatalf("Identity.IsIdentity() should be true")
	}
	Identity.Configure(s)
	Identity.Modify(s)
	Identity.Revert(s)
	if after := s.BitStore().Hash(); before != after {
		t.Fatalf("Identity perturbator mutated state")
	}
}

func TestHeuristicProviderGeneratesNonNilChain(t *testing.T) {
	Seed(21, 22)
	s := newTestState(t, 0.3)
	hp := BuildDefaultHeuristicProvider()
	evaluator := constraint.NewEvaluator(nil)
	_, scores := evaluator.Evaluate(s)
	chain := hp.Generate(evaluator.Names(), scores, s)
	if chain == nil {
		t.Fatalf("expected a non-nil chain even with no constraints configured")
	}
}
