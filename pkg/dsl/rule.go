package dsl

import (
	"fmt"
	"math/big"

	"github.com/aretw0/ppda/pkg/domain"
)

// RuleBuilder provides a fluent API for configuring one transition.
type RuleBuilder struct {
	t   domain.Transition
	err error
}

// Goto sets the target state.
func (r *RuleBuilder) Goto(to domain.State) *RuleBuilder {
	r.t.To = to
	return r
}

// Loop keeps the source state as the target (the default).
func (r *RuleBuilder) Loop() *RuleBuilder {
	r.t.To = r.t.State
	return r
}

// Terminal targets the Final state.
func (r *RuleBuilder) Terminal() *RuleBuilder {
	r.t.To = domain.Final
	return r
}

// Pop removes the stack top before any push.
func (r *RuleBuilder) Pop() *RuleBuilder {
	r.t.Action = domain.Pop
	return r
}

// Push pushes sym after the optional pop.
func (r *RuleBuilder) Push(sym domain.Symbol) *RuleBuilder {
	r.t.Push = sym
	return r
}

// Replace swaps the stack top for sym (pop, then push).
func (r *RuleBuilder) Replace(sym domain.Symbol) *RuleBuilder {
	return r.Pop().Push(sym)
}

// Weight sets the weight to num/den.
func (r *RuleBuilder) Weight(num, den int64) *RuleBuilder {
	if den == 0 {
		r.err = fmt.Errorf("%w: zero denominator", domain.ErrInvalidWeight)
		return r
	}
	r.t.Weight = big.NewRat(num, den)
	return r
}

// Prob parses the weight from a rational literal such as "1/3" or "0.25".
func (r *RuleBuilder) Prob(literal string) *RuleBuilder {
	w, ok := new(big.Rat).SetString(literal)
	if !ok {
		r.err = fmt.Errorf("%w: cannot parse %q", domain.ErrInvalidWeight, literal)
		return r
	}
	r.t.Weight = w
	return r
}

// Rat sets the weight from an existing rational. The value is copied.
func (r *RuleBuilder) Rat(w *big.Rat) *RuleBuilder {
	if w == nil {
		r.err = fmt.Errorf("%w: nil", domain.ErrInvalidWeight)
		return r
	}
	r.t.Weight = new(big.Rat).Set(w)
	return r
}

// Build returns the configured transition. Weight defaults to 1.
func (r *RuleBuilder) Build() (domain.Transition, error) {
	if r.err != nil {
		return domain.Transition{}, r.err
	}
	t := r.t
	if t.Weight == nil {
		t.Weight = big.NewRat(1, 1)
	} else {
		t.Weight = new(big.Rat).Set(t.Weight)
	}
	return t, nil
}
