package ppda_test

import (
	"context"
	"testing"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/pkg/adapters/memory"
	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_EngineIsCached(t *testing.T) {
	ws := ppda.NewWorkspace(nil)

	a, err := ws.Engine("coin")
	require.NoError(t, err)
	b, err := ws.Engine("coin")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = ws.Engine("nope")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestWorkspace_SharedStore(t *testing.T) {
	ctx := context.Background()
	ws := ppda.NewWorkspace(nil,
		ppda.WithStore(memory.NewStore()),
		ppda.WithModelOptions(automaton.WithMaxSteps(50)),
	)

	coin, err := ws.Engine("coin")
	require.NoError(t, err)
	single, err := ws.Engine("single")
	require.NoError(t, err)
	assert.Equal(t, 50, single.Model().MaxSteps())

	s1, err := coin.Generate(ctx, 1)
	require.NoError(t, err)
	s2, err := single.Generate(ctx, 1)
	require.NoError(t, err)

	all, err := ws.Samples(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := ws.Sample(ctx, s2.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Text)

	own, err := coin.Samples(ctx)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, s1.ID, own[0].ID)
}

func TestWorkspace_NoStore(t *testing.T) {
	ws := ppda.NewWorkspace(nil)
	samples, err := ws.Samples(context.Background())
	require.NoError(t, err)
	assert.Empty(t, samples)

	_, err = ws.Sample(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}
