package search

import (
	"math"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/move"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
)

// SAConfig parameterizes the annealing schedule: geometric cooling with a
// floor, a compound-step size that interpolates between MinPerStep and
// MaxPerStep as the temperature drops, per-component temperatures for the
// lexicographic acceptance test below EnergyTempThreshold, and a switch to
// an energy-weighted-sum test above it.
type SAConfig struct {
	InitialTemperature  float64
	MinTemperature      float64
	CoolingRate         float64 // applied every StepsPerTemperature steps
	StepsPerTemperature uint64

	MinPerStep int
	MaxPerStep int

	// MultStrict/MultHard scale the Strict/Hard components' own
	// temperature relative to T; Soft always anneals at T itself.
	MultStrict float64
	MultHard   float64

	// EnergyTempThreshold: at or above this temperature, acceptance
	// switches from per-component lexicographic comparison to a single
	// weighted-sum energy.
	EnergyTempThreshold float64
	WeightStrict        float64
	WeightHard          float64
	WeightSoft          float64

	// Floor is the minimum acceptance probability for a worsening move,
	// scaled by T/T0.
	Floor float64

	ReheatFactor        float64
	ReheatIdleThreshold uint64
}

// DefaultSAConfig is a conservative schedule suitable as a starting point.
var DefaultSAConfig = SAConfig{
	InitialTemperature:  100,
	MinTemperature:      0.01,
	CoolingRate:         0.97,
	StepsPerTemperature: 64,
	MinPerStep:          1,
	MaxPerStep:          4,
	MultStrict:          0.1,
	MultHard:            0.4,
	EnergyTempThreshold: 10,
	WeightStrict:        1e6,
	WeightHard:          1e3,
	WeightSoft:          1,
	Floor:               0.001,
	ReheatFactor:        4,
	ReheatIdleThreshold: 5_000,
}

// SA is Simulated Annealing over the lexicographic Score: below
// EnergyTempThreshold each component is tested in Strict/Hard/Soft order at
// its own temperature, so a higher tier's decision always dominates a
// lower tier's; above the threshold the three components are folded into
// one weighted-sum energy instead, letting the early, hot phase of the
// search move more freely across tiers.
type SA struct {
	Base
	cfg          SAConfig
	temperature  float64
	stepsAtTemp  uint64
}

func NewSA(evaluator *constraint.Evaluator, config TerminationConfig, cfg SAConfig) *SA {
	return &SA{Base: NewBase(evaluator, config), cfg: cfg}
}

func (t *SA) Reset(input *state.State) {
	t.Base.Reset(input)
	t.temperature = t.cfg.InitialTemperature
	t.stepsAtTemp = 0
}

// Temperature exposes the current annealing temperature, mainly for
// logging and statistics output.
func (t *SA) Temperature() float64 { return t.temperature }

func (t *SA) compoundSize() int {
	if t.cfg.InitialTemperature <= 0 {
		return t.cfg.MinPerStep
	}
	ratio := t.temperature / t.cfg.InitialTemperature
	size := t.cfg.MinPerStep + int(ratio*float64(t.cfg.MaxPerStep-t.cfg.MinPerStep))
	if size < t.cfg.MinPerStep {
		size = t.cfg.MinPerStep
	}
	if size > t.cfg.MaxPerStep {
		size = t.cfg.MaxPerStep
	}
	return size
}

func (t *SA) floorProbability() float64 {
	if t.cfg.InitialTemperature <= 0 {
		return t.cfg.Floor
	}
	return t.cfg.Floor * (t.temperature / t.cfg.InitialTemperature)
}

// acceptDelta returns whether a single component's change, positive
// meaning improvement, is accepted at temperature tc.
func (t *SA) acceptDelta(delta float64, tc float64) bool {
	if delta > 0 {
		return true
	}
	if tc <= 0 {
		return false
	}
	probability := math.Exp(delta / tc)
	if floor := t.floorProbability(); floor > probability {
		probability = floor
	}
	return rng.Float64() < probability
}

func (t *SA) accept(candidate, current constraint.Score) bool {
	dStrict := float64(candidate.Strict - current.Strict)
	dHard := float64(candidate.Hard - current.Hard)
	dSoft := float64(candidate.Soft - current.Soft)

	if t.temperature >= t.cfg.EnergyTempThreshold {
		energy := t.cfg.WeightStrict*dStrict + t.cfg.WeightHard*dHard + t.cfg.WeightSoft*dSoft
		return t.acceptDelta(energy, t.temperature)
	}

	if dStrict != 0 {
		return t.acceptDelta(dStrict, t.temperature*t.cfg.MultStrict)
	}
	if dHard != 0 {
		return t.acceptDelta(dHard, t.temperature*t.cfg.MultHard)
	}
	if dSoft != 0 {
		return t.acceptDelta(dSoft, t.temperature)
	}
	return true
}

func (t *SA) Step(hp *move.HeuristicProvider) {
	t.runCompoundStep(hp, t.compoundSize(), t.accept)

	t.stepsAtTemp++
	if t.stepsAtTemp >= t.cfg.StepsPerTemperature {
		t.stepsAtTemp = 0
		t.temperature *= t.cfg.CoolingRate
		if t.temperature < t.cfg.MinTemperature {
			t.temperature = t.cfg.MinTemperature
		}
	}
	if t.cfg.ReheatIdleThreshold > 0 && t.IdleIterations() > 0 && t.IdleIterations()%t.cfg.ReheatIdleThreshold == 0 {
		t.temperature *= t.cfg.ReheatFactor
		if t.temperature > t.cfg.InitialTemperature {
			t.temperature = t.cfg.InitialTemperature
		}
	}
}
