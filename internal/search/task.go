package search

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// Task is the common contract every local-search strategy satisfies: it
// owns a current working state, a best-known output snapshot, and the
// termination bookkeeping that decides when to stop.
type Task interface {
	Reset(input *state.State)
	Step(hp *move.HeuristicProvider)
	ShouldStep() bool
	NewBestFound() bool
	GetOutputState() *state.State
	GetOutputScore() constraint.Score
	GetInitialScore() constraint.Score
	Stats() *ScoreStatistics
}

// TerminationConfig bounds how long a task keeps searching once it stops
// making progress.
type TerminationConfig struct {
	// MaxIdleIterations stops the task after this many consecutive
	// non-improving steps while the output is still infeasible.
	MaxIdleIterations uint64
	// IterAtFeasibleThreshold caps how many additional steps run once the
	// output first becomes feasible.
	IterAtFeasibleThreshold uint64
	// MaxFeasibleIdleIterations is the idle-step cap once the output is
	// feasible; it is halved once the output reaches IsZero.
	MaxFeasibleIdleIterations uint64
}

// DefaultTerminationConfig mirrors typical LAHC/DLAS literature defaults
// scaled to a mid-size rostering instance.
var DefaultTerminationConfig = TerminationConfig{
	MaxIdleIterations:         200_000,
	IterAtFeasibleThreshold:   50_000,
	MaxFeasibleIdleIterations: 20_000,
}

// Base is embedded by every concrete Task and implements everything that
// does not depend on the acceptance rule: state bookkeeping, the
// generate/modify/evaluate/accept-or-revert step skeleton, and shared
// termination logic.
type Base struct {
	Evaluator *constraint.Evaluator
	Config    TerminationConfig

	current      *state.State
	currentScore constraint.Score

	output      *state.State
	outputScore constraint.Score

	initialScore constraint.Score

	idleIterations      uint64
	iterations          uint64
	feasibleAtIteration int64 // -1 until the output first becomes feasible

	newBest bool

	stats     *ScoreStatistics
	startTime time.Time
}

func NewBase(evaluator *constraint.Evaluator, config TerminationConfig) Base {
	return Base{Evaluator: evaluator, Config: config, feasibleAtIteration: -1}
}

func (b *Base) Reset(input *state.State) {
	b.current = input.Clone()
	score, _ := b.Evaluator.Evaluate(b.current)
	b.currentScore = score
	b.output = input.Clone()
	b.outputScore = score
	b.initialScore = score
	b.idleIterations = 0
	b.iterations = 0
	b.feasibleAtIteration = -1
	if score.IsFeasible() {
		b.feasibleAtIteration = 0
	}
	b.newBest = false
	b.stats = NewScoreStatistics()
	b.startTime = time.Now()
}

func (b *Base) ShouldStep() bool {
	if b.output == nil {
		return false
	}
	switch {
	case b.outputScore.IsZero():
		return b.idleIterations < b.Config.MaxFeasibleIdleIterations/2
	case b.outputScore.IsFeasible():
		if b.feasibleAtIteration >= 0 && b.iterations-uint64(b.feasibleAtIteration) >= b.Config.IterAtFeasibleThreshold {
			return false
		}
		return b.idleIterations < b.Config.MaxFeasibleIdleIterations
	default:
		return b.idleIterations < b.Config.MaxIdleIterations
	}
}

func (b *Base) NewBestFound() bool                { return b.newBest }
func (b *Base) GetOutputState() *state.State      { return b.output }
func (b *Base) GetOutputScore() constraint.Score  { return b.outputScore }
func (b *Base) GetInitialScore() constraint.Score { return b.initialScore }
func (b *Base) GetCurrentScore() constraint.Score { return b.currentScore }
func (b *Base) GetCurrentState() *state.State     { return b.current }
func (b *Base) Iterations() uint64                { return b.iterations }
func (b *Base) IdleIterations() uint64             { return b.idleIterations }
func (b *Base) Stats() *ScoreStatistics            { return b.stats }

// runStep executes the shared generate/modify/evaluate skeleton and asks
// accept whether to keep the candidate. accept receives the candidate and
// pre-modification current scores; runStep handles idle tracking, commit
// vs. revert, and best-output bookkeeping so each task only supplies its
// acceptance predicate.
func (b *Base) runStep(hp *move.HeuristicProvider, accept func(candidate, current constraint.Score) bool) {
	b.runCompoundStep(hp, 1, accept)
}

// runCompoundStep is runStep generalized to a compound move of numMoves
// perturbator-chains concatenated together before one evaluate — used by
// Simulated Annealing, whose step size scales with temperature.
func (b *Base) runCompoundStep(hp *move.HeuristicProvider, numMoves int, accept func(candidate, current constraint.Score) bool) {
	if numMoves < 1 {
		numMoves = 1
	}
	names := b.Evaluator.Names()
	chain := move.NewChain()
	for i := 0; i < numMoves; i++ {
		_, scores := b.Evaluator.Evaluate(b.current)
		sub := hp.Generate(names, scores, b.current)
		sub.Modify(b.current)
		chain.AppendChain(sub)
	}

	previousCurrent := b.currentScore
	candidateScore, _ := b.Evaluator.Evaluate(b.current)
	b.finishStep(chain, candidateScore, previousCurrent, accept)
}

func (b *Base) finishStep(chain *move.Chain, candidateScore, previousCurrent constraint.Score, accept func(candidate, current constraint.Score) bool) {
	if candidateScore.Compare(previousCurrent) <= 0 {
		b.idleIterations++
	} else {
		b.idleIterations = 0
	}

	b.newBest = false
	if accept(candidateScore, previousCurrent) {
		b.currentScore = candidateScore
		if candidateScore.Compare(b.outputScore) > 0 {
			b.output.CloneFrom(b.current)
			b.outputScore = candidateScore
			b.newBest = true
			if b.feasibleAtIteration < 0 && candidateScore.IsFeasible() {
				b.feasibleAtIteration = int64(b.iterations)
			}
			b.stats.Record(time.Since(b.startTime), candidateScore)
		}
	} else {
		chain.Revert(b.current)
	}
	b.iterations++
}
