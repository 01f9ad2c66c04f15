package constraint

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/state"

// Evaluator runs a fixed ordered list of constraints against a state and
// folds their per-constraint ConstraintScores into one total Score. It is
// stateless and safe to share across goroutines; each Evaluate call reads
// the state but never mutates it.
type Evaluator struct {
	constraints []Constraint
	names       []string
}

func NewEvaluator(constraints []Constraint) *Evaluator {
	names := make([]string, len(constraints))
	for i, c := range constraints {
		names[i] = c.Name()
	}
	return &Evaluator{constraints: constraints, names: names}
}

func (e *Evaluator) Constraints() []Constraint { return e.constraints }
func (e *Evaluator) Names() []string            { return e.names }

// Evaluate returns the total lexicographic score and, per constraint in
// registration order, its ConstraintScore (score + violations).
func (e *Evaluator) Evaluate(s *state.State) (Score, []ConstraintScore) {
	results := make([]ConstraintScore, len(e.constraints))
	var total Score
	for i, c := range e.constraints {
		results[i] = c.Evaluate(s)
		total = total.Add(results[i].Score)
	}
	return total, results
}
