package search

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// DefaultDLASLength is the history window size used when none is supplied.
const DefaultDLASLength = 25

// DLAS is Diversified Late-Acceptance Search: unlike plain LAHC it tracks a
// single floor value phi (the worst score currently represented in the
// history window) and the count N of history slots sitting at that floor,
// rather than comparing against one indexed slot. A candidate is accepted
// if it matches the current score exactly or clears the floor; the floor
// is recomputed from the window whenever its last occupant is evicted.
type DLAS struct {
	Base
	history []constraint.Score
	phi     constraint.Score
	n       int
}

// NewDLAS constructs a DLAS task with history length l, clamped to
// [1,256].
func NewDLAS(evaluator *constraint.Evaluator, config TerminationConfig, l int) *DLAS {
	if l < 1 {
		l = 1
	}
	if l > 256 {
		l = 256
	}
	return &DLAS{Base: NewBase(evaluator, config), history: make([]constraint.Score, l)}
}

func (t *DLAS) Reset(input *state.State) {
	t.Base.Reset(input)
	init := t.GetInitialScore()
	for i := range t.history {
		t.history[i] = init
	}
	t.phi = init
	t.n = len(t.history)
}

func (t *DLAS) Step(hp *move.HeuristicProvider) {
	t.runStep(hp, func(candidate, current constraint.Score) bool {
		accepted := candidate.Compare(current) == 0 || candidate.Compare(t.phi) > 0
		next := current
		if accepted {
			next = candidate
		}
		t.recordHistory(next, current)
		return accepted
	})
}

// recordHistory applies DLAS's diversified replacement rule to the slot at
// the virtual index: overwrite when the new current is worse than the slot
// (remembering regressions diversifies the floor), or when it is better
// than both the slot and the current value it replaced. phi and its
// occupancy count n track the window's floor incrementally and are
// recomputed only when the floor's last occupant is evicted.
func (t *DLAS) recordHistory(next, previous constraint.Score) {
	v := int(t.Iterations() % uint64(len(t.history)))
	slot := t.history[v]
	replace := next.Compare(slot) < 0 ||
		(next.Compare(slot) > 0 && next.Compare(previous) > 0)
	if !replace {
		return
	}
	if slot.Compare(t.phi) == 0 {
		t.n--
	}
	t.history[v] = next
	if next.Compare(t.phi) == 0 {
		t.n++
	} else if next.Compare(t.phi) < 0 {
		t.phi = next
		t.n = 1
	}
	if t.n <= 0 {
		t.phi = t.history[0]
		for _, s := range t.history[1:] {
			if s.Compare(t.phi) < 0 {
				t.phi = s
			}
		}
		t.n = 0
		for _, s := range t.history {
			if s.Compare(t.phi) == 0 {
				t.n++
			}
		}
	}
}
