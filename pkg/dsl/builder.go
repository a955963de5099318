package dsl

import (
	"fmt"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
)

// Builder collects alphabets and rules before compiling them into an Automaton.
type Builder struct {
	sigma []domain.Symbol
	gamma []domain.Symbol
	rules []*RuleBuilder
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Alphabet declares input symbols up front. The declaration order is the
// canonical sampling order; symbols first seen in rules are appended after.
func (b *Builder) Alphabet(symbols ...domain.Symbol) *Builder {
	b.sigma = append(b.sigma, symbols...)
	return b
}

// Stack declares stack symbols up front. The bottom marker is implicit.
func (b *Builder) Stack(symbols ...domain.Symbol) *Builder {
	b.gamma = append(b.gamma, symbols...)
	return b
}

// On starts a rule leaving (from, top) on input.
func (b *Builder) On(from domain.State, top, input domain.Symbol) *RuleBuilder {
	rb := &RuleBuilder{
		t: domain.Transition{
			Key:    domain.Key{State: from, Top: top, Input: input},
			To:     from,
			Action: domain.Noop,
			Push:   domain.NoSymbol,
		},
	}
	b.rules = append(b.rules, rb)
	return rb
}

// Rules returns the transitions declared so far, in declaration order.
func (b *Builder) Rules() ([]domain.Transition, error) {
	out := make([]domain.Transition, 0, len(b.rules))
	for i, rb := range b.rules {
		t, err := rb.Build()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Build compiles the rules into a new Automaton.
// Later rules for the same key replace earlier ones, as with Add.
func (b *Builder) Build(opts ...automaton.Option) (*automaton.Automaton, error) {
	rules, err := b.Rules()
	if err != nil {
		return nil, err
	}

	a := automaton.New(b.sigma, b.gamma, opts...)
	for i, t := range rules {
		if err := a.Add(t.State, t.Top, t.Input, t.To, t.Action, t.Push, t.Weight); err != nil {
			return nil, fmt.Errorf("failed to add rule %d (%s, %s, %s): %w", i, t.State, t.Top, t.Input, err)
		}
	}
	return a, nil
}
