package dsl

import (
	"context"
	"math/big"
	"testing"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_CountingFlow(t *testing.T) {
	b := New().Alphabet("a", "b", "$").Stack("A")

	b.On(domain.Initial, domain.Bottom, "a").Push("A").Loop().Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "$").Terminal().Weight(1, 2)
	b.On(domain.Initial, "A", "a").Push("A").Weight(1, 2)
	b.On(domain.Initial, "A", "b").Pop().Goto(1).Prob("1/2")
	b.On(1, "A", "b").Pop()
	b.On(1, domain.Bottom, "$").Terminal()

	a, err := b.Build(automaton.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []domain.Symbol{"a", "b", "$"}, a.Alphabet())
	assert.Equal(t, []domain.Symbol{domain.Bottom, "A"}, a.StackAlphabet())
	assert.Len(t, a.Transitions(), 6)
	assert.True(t, a.IsNormalized())

	w, err := a.Accept(domain.Tokenize("aabb$", ""))
	require.NoError(t, err)
	assert.Equal(t, "1/8", w.RatString())

	y, w, err := a.Generate(context.Background())
	require.NoError(t, err)
	scored, err := a.Accept(y)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Cmp(scored))
}

func TestRuleBuilder_Defaults(t *testing.T) {
	b := New()
	tr, err := b.On(3, "X", "x").Build()
	require.NoError(t, err)

	assert.Equal(t, domain.State(3), tr.To)
	assert.Equal(t, domain.Noop, tr.Action)
	assert.True(t, tr.Push.IsNone())
	assert.Equal(t, "1", tr.Weight.RatString())
}

func TestRuleBuilder_Replace(t *testing.T) {
	tr, err := New().On(domain.Initial, "X", "x").Replace("Y").Terminal().Build()
	require.NoError(t, err)
	assert.Equal(t, domain.Pop, tr.Action)
	assert.Equal(t, domain.Symbol("Y"), tr.Push)
	assert.Equal(t, domain.Final, tr.To)
}

func TestRuleBuilder_WeightErrors(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*RuleBuilder) *RuleBuilder
	}{
		{name: "Zero denominator", apply: func(r *RuleBuilder) *RuleBuilder { return r.Weight(1, 0) }},
		{name: "Bad literal", apply: func(r *RuleBuilder) *RuleBuilder { return r.Prob("half") }},
		{name: "Nil rational", apply: func(r *RuleBuilder) *RuleBuilder { return r.Rat(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.apply(b.On(domain.Initial, domain.Bottom, "a"))
			_, err := b.Build()
			assert.ErrorIs(t, err, domain.ErrInvalidWeight)
		})
	}
}

func TestRuleBuilder_RatIsCopied(t *testing.T) {
	w := big.NewRat(1, 4)
	rb := New().On(domain.Initial, domain.Bottom, "a").Rat(w)
	w.SetInt64(3)

	tr, err := rb.Build()
	require.NoError(t, err)
	assert.Equal(t, "1/4", tr.Weight.RatString())
}

func TestBuilder_AddErrorsSurface(t *testing.T) {
	b := New()
	b.On(domain.Initial, domain.Bottom, domain.NoSymbol)
	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}
