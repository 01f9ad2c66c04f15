// Package constraint implements the lexicographic scoring model and the
// nine concrete rostering rules: each reads a state.State and emits a
// ConstraintScore with per-cell Violations, driven by a pre-computed
// conflict table built once at construction time.
package constraint

// Score is a lexicographic triple: Strict dominates Hard dominates Soft.
// Strict violations represent rules that must never be broken (e.g. an
// employee's absolute workload ceiling), Hard violations represent
// feasibility rules, Soft violations represent preferences.
type Score struct {
	Strict int64
	Hard   int64
	Soft   int64
}

func (s Score) Add(other Score) Score {
	return Score{Strict: s.Strict + other.Strict, Hard: s.Hard + other.Hard, Soft: s.Soft + other.Soft}
}

func (s Score) Sub(other Score) Score {
	return Score{Strict: s.Strict - other.Strict, Hard: s.Hard - other.Hard, Soft: s.Soft - other.Soft}
}

func (s Score) IsFeasible() bool { return s.Strict >= 0 && s.Hard >= 0 }

func (s Score) IsZero() bool { return s.Strict >= 0 && s.Hard >= 0 && s.Soft >= 0 }

// Compare returns -1, 0, or 1 following lexicographic order on
// (Strict, Hard, Soft), all maximized (a higher score is better).
func (s Score) Compare(other Score) int {
	if s.Strict != other.Strict {
		return cmp(s.Strict, other.Strict)
	}
	if s.Hard != other.Hard {
		return cmp(s.Hard, other.Hard)
	}
	return cmp(s.Soft, other.Soft)
}

func cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (s Score) Less(other Score) bool         { return s.Compare(other) < 0 }
func (s Score) Greater(other Score) bool       { return s.Compare(other) > 0 }
func (s Score) GreaterOrEqual(other Score) bool { return s.Compare(other) >= 0 }
func (s Score) LessOrEqual(other Score) bool   { return s.Compare(other) <= 0 }
func (s Score) Equal(other Score) bool         { return s.Compare(other) == 0 }
