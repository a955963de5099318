package ppda_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/pkg/adapters/memory"
	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, model string, opts ...ppda.Option) *ppda.Engine {
	t.Helper()
	a, err := catalog.Default().Build(model)
	require.NoError(t, err)
	eng, err := ppda.New(model, a, opts...)
	require.NoError(t, err)
	return eng
}

func TestNew_Validation(t *testing.T) {
	_, err := ppda.New("x", nil)
	assert.Error(t, err)

	a, err := catalog.Single()
	require.NoError(t, err)
	_, err = ppda.New("", a)
	assert.Error(t, err)
}

func TestEngine_Accept(t *testing.T) {
	eng := newEngine(t, "dyck")
	ctx := context.Background()

	w, err := eng.Accept(ctx, domain.Tokenize("()$", ""))
	require.NoError(t, err)
	assert.Equal(t, "1/6", w.RatString())

	w, err = eng.Accept(ctx, domain.Tokenize("))", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, w.Sign())
}

func TestEngine_Accept_PopBottom(t *testing.T) {
	a := automaton.New(domain.Symbols("a"), nil)
	require.NoError(t, a.Add(domain.Initial, domain.Bottom, "a", domain.Final, domain.Pop, domain.NoSymbol, big.NewRat(1, 1)))
	eng, err := ppda.New("broken", a)
	require.NoError(t, err)

	_, err = eng.Accept(context.Background(), domain.String{"a"})
	assert.ErrorIs(t, err, domain.ErrPopBottom)

	_, err = eng.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrPopBottom)
}

func TestEngine_Trace(t *testing.T) {
	eng := newEngine(t, "anbn")
	ctx := context.Background()

	tr, err := eng.Trace(ctx, domain.Tokenize("ab", ""))
	require.NoError(t, err)
	assert.Equal(t, []domain.State{domain.Initial, domain.Initial, 1}, tr.States)
	assert.Equal(t, domain.State(1), tr.Current)
	assert.Equal(t, "1/4", tr.Weight.RatString())

	// The path stops where the string leaves the automaton.
	tr, err = eng.Trace(ctx, domain.Tokenize("abb", ""))
	require.NoError(t, err)
	assert.Equal(t, []domain.State{domain.Initial, domain.Initial, 1}, tr.States)
	assert.Equal(t, domain.State(1), tr.Current)
	assert.Equal(t, 0, tr.Weight.Sign())

	tr, err = eng.Trace(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.State{domain.Initial}, tr.States)
	assert.Equal(t, domain.Initial, tr.Current)
}

func TestEngine_Trace_Error(t *testing.T) {
	a := automaton.New(domain.Symbols("a"), nil)
	require.NoError(t, a.Add(domain.Initial, domain.Bottom, "a", domain.Final, domain.Pop, domain.NoSymbol, big.NewRat(1, 1)))
	eng, err := ppda.New("broken", a)
	require.NoError(t, err)

	_, err = eng.Trace(context.Background(), domain.String{"a"})
	assert.ErrorIs(t, err, domain.ErrPopBottom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Trace(ctx, domain.String{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Generate_Reproducible(t *testing.T) {
	eng := newEngine(t, "anbn")
	ctx := context.Background()

	s1, err := eng.Generate(ctx, 77)
	require.NoError(t, err)
	s2, err := eng.Generate(ctx, 77)
	require.NoError(t, err)

	assert.Equal(t, s1.Symbols, s2.Symbols)
	assert.Equal(t, s1.Weight, s2.Weight)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Equal(t, int64(77), s1.Seed)
	assert.Equal(t, "anbn", s1.Model)
	assert.Equal(t, len(s1.Symbols), s1.Steps)

	w, err := eng.Accept(ctx, domain.NewString(s1.Symbols...))
	require.NoError(t, err)
	assert.Equal(t, s1.Weight, w.RatString())
}

func TestEngine_Generate_NotNormalized(t *testing.T) {
	a := automaton.New(domain.Symbols("a", "b"), nil)
	require.NoError(t, a.Add(domain.Initial, domain.Bottom, "a", domain.Final, domain.Noop, domain.NoSymbol, big.NewRat(1, 2)))
	eng, err := ppda.New("half", a)
	require.NoError(t, err)

	assert.ErrorIs(t, eng.Check(), domain.ErrNotNormalized)
	_, err = eng.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotNormalized)
}

func TestEngine_Batch_IndependentOfWorkers(t *testing.T) {
	ctx := context.Background()
	one := newEngine(t, "dyck", ppda.WithWorkers(1))
	many := newEngine(t, "dyck", ppda.WithWorkers(8))

	a, err := one.Batch(ctx, 64, 5)
	require.NoError(t, err)
	b, err := many.Batch(ctx, 64, 5)
	require.NoError(t, err)
	require.Len(t, a, 64)
	require.Len(t, b, 64)

	for i := range a {
		assert.Equal(t, a[i].Symbols, b[i].Symbols, "sample %d", i)
		assert.Equal(t, a[i].Weight, b[i].Weight)
		assert.Equal(t, a[i].Seed, b[i].Seed)
	}
}

func TestEngine_Batch_ReplayWithGenerate(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, "parity")

	batch, err := eng.Batch(ctx, 10, 3)
	require.NoError(t, err)

	for _, s := range batch {
		replay, err := eng.Generate(ctx, s.Seed)
		require.NoError(t, err)
		assert.Equal(t, s.Symbols, replay.Symbols)
		assert.Equal(t, s.Weight, replay.Weight)
	}
}

func TestEngine_Batch_Invalid(t *testing.T) {
	_, err := newEngine(t, "coin").Batch(context.Background(), -1, 1)
	assert.Error(t, err)

	empty, err := newEngine(t, "coin").Batch(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEngine_SampleStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	eng := newEngine(t, "coin", ppda.WithSampleStore(store))

	batch, err := eng.Batch(ctx, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())

	stored, err := eng.Samples(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 5)

	loaded, err := eng.Sample(ctx, batch[2].ID)
	require.NoError(t, err)
	assert.Equal(t, batch[2].Text, loaded.Text)

	_, err = eng.Sample(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)

	noStore := newEngine(t, "coin")
	none, err := noStore.Samples(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEngine_Hooks(t *testing.T) {
	ctx := context.Background()
	var steps, accepts, generations atomic.Int64
	var mu sync.Mutex
	var lastAccept *domain.AcceptEvent

	hooks := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { steps.Add(1) },
		OnAccept: func(_ context.Context, e *domain.AcceptEvent) {
			accepts.Add(1)
			mu.Lock()
			lastAccept = e
			mu.Unlock()
		},
		OnGenerate: func(context.Context, *domain.GenerateEvent) { generations.Add(1) },
	}
	eng := newEngine(t, "anbn", ppda.WithLifecycleHooks(hooks))

	_, err := eng.Accept(ctx, domain.Tokenize("ab$", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(3), steps.Load())
	assert.Equal(t, int64(1), accepts.Load())
	assert.Equal(t, "1/4", lastAccept.Weight)
	assert.Equal(t, "anbn", lastAccept.Model)
	assert.False(t, lastAccept.Zero)

	steps.Store(0)
	batch, err := eng.Batch(ctx, 4, 1)
	require.NoError(t, err)
	total := 0
	for _, s := range batch {
		total += s.Steps
	}
	assert.Equal(t, int64(total), steps.Load())
	assert.Equal(t, int64(4), generations.Load())
}

type failingStore struct {
	*memory.Store
}

func (failingStore) Save(context.Context, *domain.Sample) error {
	return errors.New("disk full")
}

func TestEngine_Generate_SaveFailureFiresHook(t *testing.T) {
	var mu sync.Mutex
	var events []*domain.GenerateEvent
	hooks := domain.LifecycleHooks{
		OnGenerate: func(_ context.Context, e *domain.GenerateEvent) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		},
	}
	eng := newEngine(t, "coin",
		ppda.WithSampleStore(failingStore{memory.NewStore()}),
		ppda.WithLifecycleHooks(hooks),
	)

	_, err := eng.Generate(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	require.Len(t, events, 1)
	assert.Nil(t, events[0].Sample)
	require.Error(t, events[0].Err)
	assert.Contains(t, events[0].Err.Error(), "disk full")
}

func TestEngine_ConcurrentAccept(t *testing.T) {
	eng := newEngine(t, "dyck")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := eng.Accept(ctx, domain.Tokenize("(())$", ""))
			assert.NoError(t, err)
			assert.Equal(t, "1/27", w.RatString())
		}()
	}
	wg.Wait()
}
