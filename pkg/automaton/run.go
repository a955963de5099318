package automaton

import (
	"math/big"

	"github.com/aretw0/ppda/pkg/domain"
)

// Run is the mutable execution state of an automaton: the current state and
// the stack. The stack is never empty; its base is always domain.Bottom.
//
// A Run is not safe for concurrent use. Distinct runs over the same
// automaton are.
type Run struct {
	a        *Automaton
	state    domain.State
	stack    []domain.Symbol
	steps    int
	observer StepFunc
}

// StepFunc observes every executed transition together with the resulting
// stack depth.
type StepFunc func(t domain.Transition, depth int)

// Observe registers fn to be called after every executed transition.
// Steps with weight 0 execute nothing and are not observed.
func (r *Run) Observe(fn StepFunc) {
	r.observer = fn
}

// Reset returns the run to the initial configuration.
func (r *Run) Reset() {
	r.state = domain.Initial
	r.stack = append(r.stack[:0], domain.Bottom)
	r.steps = 0
}

// State returns the current state.
func (r *Run) State() domain.State {
	return r.state
}

// Top returns the symbol on top of the stack.
func (r *Run) Top() domain.Symbol {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of symbols on the stack, bottom marker included.
func (r *Run) Depth() int {
	return len(r.stack)
}

// Stack returns a copy of the stack, bottom first.
func (r *Run) Stack() []domain.Symbol {
	out := make([]domain.Symbol, len(r.stack))
	copy(out, r.stack)
	return out
}

// Steps returns the number of transitions taken since the last Reset.
func (r *Run) Steps() int {
	return r.steps
}

// Step consumes one input symbol and returns the weight of the move.
//
// If no transition with positive weight exists for the current
// configuration, Step returns 0 and leaves the run unchanged. Otherwise the
// optional pop happens strictly before the optional push, then the state
// advances. Popping the bottom marker returns a *StepError wrapping
// domain.ErrPopBottom and leaves the run unchanged.
func (r *Run) Step(input domain.Symbol) (*big.Rat, error) {
	key := domain.Key{State: r.state, Top: r.Top(), Input: input}

	r.a.mu.RLock()
	t, ok := r.a.relation.Get(key)
	r.a.mu.RUnlock()

	if !ok || t.Weight.Sign() == 0 {
		return new(big.Rat), nil
	}

	if t.Action == domain.Pop {
		if key.Top == domain.Bottom {
			return nil, &StepError{Key: key, Err: domain.ErrPopBottom}
		}
		r.stack = r.stack[:len(r.stack)-1]
	}
	if !t.Push.IsNone() {
		r.stack = append(r.stack, t.Push)
	}
	r.state = t.To
	r.steps++

	if r.observer != nil {
		r.observer(t, len(r.stack))
	}
	return new(big.Rat).Set(t.Weight), nil
}
