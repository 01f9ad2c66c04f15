package search

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/bitstore"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// DefaultTabuMoveTenure is the number of recent move signatures kept
// forbidden.
const DefaultTabuMoveTenure = 50

// TabuMove forbids reapplying any of the last Tenure move shapes,
// fingerprinted by bitstore.XORHash between the state right before and
// right after the move — so a move that toggles the same bits back and
// forth is recognized as a cycle even if intermediate states differ.
// Aspiration mirrors TabuState: a move that improves on the best output
// found so far escapes the ban.
type TabuMove struct {
	Base
	tenure int
	recent []uint64
	pos    int
	filled int

	preMove *bitstore.Store
}

func NewTabuMove(evaluator *constraint.Evaluator, config TerminationConfig, tenure int) *TabuMove {
	if tenure < 1 {
		tenure = 1
	}
	return &TabuMove{Base: NewBase(evaluator, config), tenure: tenure, recent: make([]uint64, tenure)}
}

func (t *TabuMove) Reset(input *state.State) {
	t.Base.Reset(input)
	t.pos = 0
	t.filled = 0
	t.preMove = t.GetCurrentState().BitStore().Clone()
}

func (t *TabuMove) isTabu(h uint64) bool {
	for i := 0; i < t.filled; i++ {
		if t.recent[i] == h {
			return true
		}
	}
	return false
}

func (t *TabuMove) push(h uint64) {
	t.recent[t.pos] = h
	t.pos = (t.pos + 1) % len(t.recent)
	if t.filled < len(t.recent) {
		t.filled++
	}
}

func (t *TabuMove) Step(hp *move.HeuristicProvider) {
	t.runStep(hp, func(candidate, current constraint.Score) bool {
		sig := t.preMove.XORHash(t.GetCurrentState().BitStore())
		aspires := candidate.Compare(t.GetOutputScore()) > 0
		if t.isTabu(sig) && !aspires {
			// Rejected: finishStep reverts current back to exactly what
			// preMove already holds, so it stays valid unchanged.
			return false
		}
		t.push(sig)
		t.preMove.CloneFrom(t.GetCurrentState().BitStore())
		return true
	})
}
