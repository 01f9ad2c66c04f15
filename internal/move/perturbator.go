// Package move implements the perturbator layer: single moves and
// compound chains that mutate a state.State and can undo themselves, plus
// the HeuristicProvider that synthesizes moves from constraint
// violations.
package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// Perturbator is a single reversible mutation of a state.State. Configure
// captures whatever information Modify/Revert need from the state before
// any mutation happens; Modify applies the move, Revert undoes it exactly.
type Perturbator interface {
	IsIdentity() bool
	Modify(s *state.State)
	Revert(s *state.State)
}

// RepairPerturbator is cloned once per targeted violation and configured
// against it, rather than configured blind like an Autonomous move.
type RepairPerturbator interface {
	Perturbator
	ConfigureForViolation(v constraint.Violation, s *state.State)
}

// Autonomous is a perturbator with no required violation context: it picks
// its own target at random. HeuristicProvider falls back to these,
// round-robin, when a step's violations yield no non-identity repair move.
type Autonomous interface {
	Perturbator
	Configure(s *state.State)
}

// ApplicabilityAware is the optional subset of Autonomous moves that can
// inspect the current state before deciding whether to
// participate in this step's chain at all (e.g. ShiftByZ only applies
// when the chosen employee has some existing assignment to slide).
type ApplicabilityAware interface {
	Autonomous
	ConfigureIfApplicable(s *state.State) bool
}

// identity is the package-level zero-size marker for "no-op move": any
// number of callers can hold identity{} without allocating.
type identity struct{}

func (identity) IsIdentity() bool        { return true }
func (identity) Modify(*state.State)     {}
func (identity) Revert(*state.State)     {}
func (identity) Configure(*state.State)  {}

// Identity is the shared no-op perturbator.
var Identity Autonomous = identity{}
