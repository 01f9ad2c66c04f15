package constraint

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/state"

// ConstraintScore accumulates one constraint's contribution to the total
// roster score, keeping the discrete Violations that produced it so the
// heuristic provider can target repair moves at them.
type ConstraintScore struct {
	Score      Score
	Violations []Violation
}

// Violate records a violation and folds its delta into the running score.
func (c *ConstraintScore) Violate(v Violation) {
	c.Score = c.Score.Add(v.Delta)
	c.Violations = append(c.Violations, v)
}

// AddScore folds a delta into the running score without recording a
// discrete violation — used for score terms that no repair move targets
// (e.g. EmployeeAvailability's desired-shift and request weights).
func (c *ConstraintScore) AddScore(delta Score) {
	c.Score = c.Score.Add(delta)
}

// Constraint evaluates a state and reports how badly it violates one
// rostering rule. Implementations precompute whatever lookup tables they
// need once, at construction time, and never mutate them afterward.
type Constraint interface {
	Name() string
	Evaluate(s *state.State) ConstraintScore
}
