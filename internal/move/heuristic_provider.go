package move

import (
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// RepairFactory builds a fresh, unconfigured repair perturbator instance —
// the move layer's stand-in for "clone the template", since Go values are
// constructed rather than cloned from a prototype.
type RepairFactory func() RepairPerturbator

// HeuristicProvider holds the pool of autonomous search moves and, per
// constraint name, the repair perturbator templates that constraint
// declares. Generate synthesizes one composite move per search step from
// whatever violations the most recent evaluation produced.
type HeuristicProvider struct {
	repairs     map[string][]RepairFactory
	autonomous  []Autonomous
	conditional []ApplicabilityAware
	rrIndex     int
}

func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{repairs: map[string][]RepairFactory{}}
}

// RegisterRepair attaches a repair perturbator template to a constraint,
// identified by its Constraint.Name().
func (hp *HeuristicProvider) RegisterRepair(constraintName string, factory RepairFactory) {
	hp.repairs[constraintName] = append(hp.repairs[constraintName], factory)
}

// RegisterAutonomous adds a move to the round-robin fallback pool. Moves
// that also implement ApplicabilityAware are registered only as
// conditional moves instead — each holds single mutable configuration
// state, so a move must not be both round-robin-selected and
// conditionally-selected in the same step, or the second Configure call
// would silently invalidate the first's Revert data.
func (hp *HeuristicProvider) RegisterAutonomous(p Autonomous) {
	if aware, ok := p.(ApplicabilityAware); ok {
		hp.conditional = append(hp.conditional, aware)
		return
	}
	hp.autonomous = append(hp.autonomous, p)
}

// Generate builds the PerturbatorChain for one search step: for every
// constraint with at least one violation and a registered repair
// template, it clones and configures one repair per (template, violation)
// pair; if nothing qualifies, it falls back to the next autonomous move in
// round-robin order. It also gives every ApplicabilityAware move a chance
// to opt in regardless of which branch fired, matching the reference
// model's "optionally call configure_if_applicable" step.
func (hp *HeuristicProvider) Generate(names []string, scores []constraint.ConstraintScore, s *state.State) *Chain {
	chain := NewChain()
	any := false
	for i, name := range names {
		factories, ok := hp.repairs[name]
		if !ok || i >= len(scores) || len(scores[i].Violations) == 0 {
			continue
		}
		for _, factory := range factories {
			for _, v := range scores[i].Violations {
				p := factory()
				p.ConfigureForViolation(v, s)
				if !p.IsIdentity() {
					chain.Append(p)
					any = true
				}
			}
		}
	}
	if !any && len(hp.autonomous) > 0 {
		p := hp.autonomous[hp.rrIndex%len(hp.autonomous)]
		hp.rrIndex++
		p.Configure(s)
		if !p.IsIdentity() {
			chain.Append(p)
		}
	}
	for _, aware := range hp.conditional {
		if aware.ConfigureIfApplicable(s) && !aware.IsIdentity() {
			chain.Append(aware)
		}
	}
	if chain.Empty() {
		chain.Append(Identity)
	}
	return chain
}
