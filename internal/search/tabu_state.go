package search

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// DefaultTabuStateTenure is the number of recent states kept forbidden.
const DefaultTabuStateTenure = 50

// TabuState forbids revisiting any of the last Tenure whole-assignment
// fingerprints, with an aspiration override: a candidate that beats the
// best output found so far is accepted even if tabu, since improving the
// incumbent can never be a cycle back to a worse state.
type TabuState struct {
	Base
	tenure int
	recent []uint64 // ring buffer of accepted-state hashes
	pos    int
	filled int
}

func NewTabuState(evaluator *constraint.Evaluator, config TerminationConfig, tenure int) *TabuState {
	if tenure < 1 {
		tenure = 1
	}
	return &TabuState{Base: NewBase(evaluator, config), tenure: tenure, recent: make([]uint64, tenure)}
}

func (t *TabuState) Reset(input *state.State) {
	t.Base.Reset(input)
	t.pos = 0
	t.filled = 0
	t.push(input.BitStore().Hash())
}

func (t *TabuState) isTabu(h uint64) bool {
	for i := 0; i < t.filled; i++ {
		if t.recent[i] == h {
			return true
		}
	}
	return false
}

func (t *TabuState) push(h uint64) {
	t.recent[t.pos] = h
	t.pos = (t.pos + 1) % len(t.recent)
	if t.filled < len(t.recent) {
		t.filled++
	}
}

func (t *TabuState) Step(hp *move.HeuristicProvider) {
	t.runStep(hp, t.accept)
}

// accept rejects a candidate whose fingerprint is tabu unless it beats the
// best output (aspiration), and pushes the fingerprint of every accepted
// candidate.
func (t *TabuState) accept(candidate, current constraint.Score) bool {
	h := t.current().BitStore().Hash()
	aspires := candidate.Compare(t.GetOutputScore()) > 0
	if t.isTabu(h) && !aspires {
		return false
	}
	t.push(h)
	return true
}

// current exposes the embedded working state for fingerprinting; Base
// keeps it unexported so the acceptance closure reaches it through this
// thin accessor instead of duplicating state tracking in TabuState.
func (t *TabuState) current() *state.State { return t.GetCurrentState() }
