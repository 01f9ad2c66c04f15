package move

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/state"

// Chain is an ordered sequence of perturbators applied together as one
// compound move: Modify runs them forward, Revert runs them in reverse so
// that out-of-order partial state changes always unwind correctly.
type Chain struct {
	moves []Perturbator
}

func NewChain() *Chain { return &Chain{} }

func (c *Chain) Append(p Perturbator) {
	c.moves = append(c.moves, p)
}

// AppendChain drains other into c, taking ownership of its moves; other
// is left empty.
func (c *Chain) AppendChain(other *Chain) {
	c.moves = append(c.moves, other.moves...)
	other.moves = nil
}

func (c *Chain) Len() int { return len(c.moves) }

func (c *Chain) Empty() bool { return len(c.moves) == 0 }

func (c *Chain) IsIdentity() bool {
	for _, m := range c.moves {
		if !m.IsIdentity() {
			return false
		}
	}
	return true
}

func (c *Chain) Modify(s *state.State) {
	for _, m := range c.moves {
		m.Modify(s)
	}
}

func (c *Chain) Revert(s *state.State) {
	for i := len(c.moves) - 1; i >= 0; i-- {
		c.moves[i].Revert(s)
	}
}
