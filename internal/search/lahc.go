package search

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// DefaultLAHCLength is the history length used when none is supplied.
const DefaultLAHCLength = 25

// LAHC is Late-Acceptance Hill Climbing: a candidate is accepted if it
// matches or beats the current score, or if it beats the score recorded L steps ago
// (the virtual-index history slot), whichever is easier — tolerating
// temporary regressions as long as they don't fall behind history.
type LAHC struct {
	Base
	history []constraint.Score
}

// NewLAHC constructs an LAHC task with history length l, clamped to
// [1,256].
func NewLAHC(evaluator *constraint.Evaluator, config TerminationConfig, l int) *LAHC {
	if l < 1 {
		l = 1
	}
	if l > 256 {
		l = 256
	}
	return &LAHC{Base: NewBase(evaluator, config), history: make([]constraint.Score, l)}
}

func (t *LAHC) Reset(input *state.State) {
	t.Base.Reset(input)
	for i := range t.history {
		t.history[i] = t.GetInitialScore()
	}
}

func (t *LAHC) Step(hp *move.HeuristicProvider) {
	t.runStep(hp, t.accept)
}

// accept is LAHC's acceptance rule against the history slot at the
// virtual index; an accepted candidate that beats that slot overwrites it.
func (t *LAHC) accept(candidate, current constraint.Score) bool {
	v := int(t.Iterations() % uint64(len(t.history)))
	accepted := candidate.Compare(t.history[v]) > 0 || candidate.Compare(current) >= 0
	if accepted && candidate.Compare(t.history[v]) > 0 {
		t.history[v] = candidate
	}
	return accepted
}
