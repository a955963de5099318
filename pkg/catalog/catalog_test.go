package catalog_test

import (
	"context"
	"testing"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Names(t *testing.T) {
	r := catalog.Default()
	assert.Equal(t, []string{"anbn", "coin", "dyck", "parity", "single"}, r.Names())
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := catalog.Default().Get("nope")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)

	_, err = catalog.Default().Build("nope")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := catalog.NewRegistry()
	r.Register(catalog.Model{Name: "x", Description: "first", Build: catalog.Single})
	r.Register(catalog.Model{Name: "x", Description: "second", Build: catalog.Coin})

	m, err := r.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "second", m.Description)
	assert.Len(t, r.Models(), 1)
}

func TestBuiltin_NormalizedAndConsistent(t *testing.T) {
	ctx := context.Background()
	for _, m := range catalog.Builtin() {
		t.Run(m.Name, func(t *testing.T) {
			a, err := m.Build(automaton.WithSeed(99))
			require.NoError(t, err)
			require.NoError(t, a.CheckNormalized())

			for i := 0; i < 100; i++ {
				y, w, err := a.Generate(ctx)
				require.NoError(t, err)
				require.Positive(t, w.Sign())

				scored, err := a.Accept(y)
				require.NoError(t, err)
				assert.Equal(t, 0, w.Cmp(scored), "model %s, string %q", m.Name, y.String())
			}
		})
	}
}

func TestBuiltin_FreshInstances(t *testing.T) {
	r := catalog.Default()
	a1, err := r.Build("coin")
	require.NoError(t, err)
	a2, err := r.Build("coin")
	require.NoError(t, err)
	assert.NotSame(t, a1, a2)
}

func TestBuiltin_KnownWeights(t *testing.T) {
	tests := []struct {
		model string
		input string
		want  string
	}{
		{model: "single", input: "a", want: "1"},
		{model: "coin", input: "b", want: "1/2"},
		{model: "dyck", input: "$", want: "1/2"},
		{model: "dyck", input: "()$", want: "1/6"},
		{model: "dyck", input: "(()", want: "1/9"},
		{model: "dyck", input: ")", want: "0"},
		{model: "anbn", input: "ab$", want: "1/4"},
		{model: "parity", input: "aa$", want: "1/8"},
	}
	r := catalog.Default()
	for _, tt := range tests {
		t.Run(tt.model+"/"+tt.input, func(t *testing.T) {
			a, err := r.Build(tt.model)
			require.NoError(t, err)
			w, err := a.Accept(domain.Tokenize(tt.input, ""))
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.RatString())
		})
	}
}

func TestParity_StackStaysShallow(t *testing.T) {
	a, err := catalog.Parity()
	require.NoError(t, err)
	run := a.NewRun()
	for i := 0; i < 6; i++ {
		_, err := run.Step("a")
		require.NoError(t, err)
		assert.Equal(t, 2, run.Depth())
	}
	assert.Equal(t, domain.Symbol("E"), run.Top())
}
