// Package search implements the local-search task family (Late-Acceptance
// Hill Climbing, Diversified LAS, Simulated Annealing, and two tabu
// variants) that drive the roster toward a better lexicographic score by
// repeatedly generating a perturbator chain, applying it, evaluating the
// result, and accepting or reverting it per the task's acceptance rule.
package search

import (
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/constraint"
)

// StatSample is one point of a score-over-time series: how many
// milliseconds had elapsed since the search started when a new best-known
// output score was recorded.
type StatSample struct {
	ElapsedMillis int64
	Score         constraint.Score
}

// ScoreStatistics is an append-only, time-indexed record of every
// new-best event a task reports. Samples landing in the same millisecond
// as the previous one overwrite it rather than appending, keeping the
// series monotone in time without growing unboundedly on a fast machine.
type ScoreStatistics struct {
	samples []StatSample
	min     constraint.Score
	max     constraint.Score
	hasAny  bool
}

func NewScoreStatistics() *ScoreStatistics {
	return &ScoreStatistics{}
}

// Record appends (or overwrites the same-millisecond tail of) a sample.
func (s *ScoreStatistics) Record(elapsed time.Duration, score constraint.Score) {
	ms := elapsed.Milliseconds()
	if n := len(s.samples); n > 0 && s.samples[n-1].ElapsedMillis == ms {
		s.samples[n-1].Score = score
	} else {
		s.samples = append(s.samples, StatSample{ElapsedMillis: ms, Score: score})
	}
	if !s.hasAny || score.Compare(s.max) > 0 {
		s.max = score
	}
	if !s.hasAny || score.Compare(s.min) < 0 {
		s.min = score
	}
	s.hasAny = true
}

func (s *ScoreStatistics) Samples() []StatSample { return s.samples }

// Snapshot returns an independent copy of the series, safe to hand to
// another goroutine while the original keeps growing.
func (s *ScoreStatistics) Snapshot() *ScoreStatistics {
	out := &ScoreStatistics{min: s.min, max: s.max, hasAny: s.hasAny}
	out.samples = make([]StatSample, len(s.samples))
	copy(out.samples, s.samples)
	return out
}
func (s *ScoreStatistics) Min() constraint.Score  { return s.min }
func (s *ScoreStatistics) Max() constraint.Score  { return s.max }
