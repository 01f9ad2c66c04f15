package state

// Axis is an ordered, fixed-length sequence of homogeneous domain entities
// (shifts, employees, days, or skills). Axes are owned by the solver
// configuration; a State holds only a borrowed reference.
type Axis[T any] struct {
	entities []T
}

// NewAxis wraps entities as an Axis without copying.
func NewAxis[T any](entities []T) Axis[T] {
	return Axis[T]{entities: entities}
}

func (a Axis[T]) Size() uint64 { return uint64(len(a.entities)) }

func (a Axis[T]) At(i uint64) T { return a.entities[i] }

func (a Axis[T]) Entities() []T { return a.entities }
