package ppda

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"math/rand"
	"runtime"
	"time"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/aretw0/ppda/pkg/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Version is the engine release.
const Version = "0.1.0"

// Engine is the high-level entry point for the ppda library.
// It is safe for concurrent use once the underlying automaton is no longer
// being modified.
type Engine struct {
	name    string
	model   *automaton.Automaton
	store   ports.SampleStore
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	workers int
	now     func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSampleStore persists every generated sample into store.
func WithSampleStore(store ports.SampleStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithWorkers bounds the number of concurrent generations in Batch.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New initializes an Engine around model. The name labels samples, metrics
// and log records.
func New(name string, model *automaton.Automaton, opts ...Option) (*Engine, error) {
	if model == nil {
		return nil, errors.New("model is required")
	}
	if name == "" {
		return nil, errors.New("model name is required")
	}

	eng := &Engine{
		name:    name,
		model:   model,
		workers: runtime.NumCPU(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so callers never need a nil check
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("model", name)

	return eng, nil
}

// Name returns the model name.
func (e *Engine) Name() string {
	return e.name
}

// Model returns the underlying automaton.
func (e *Engine) Model() *automaton.Automaton {
	return e.model
}

// Check reports whether the model is locally normalized.
func (e *Engine) Check() error {
	return e.model.CheckNormalized()
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t, Model: e.name}
}

// newRun returns a run whose steps fire the OnStep hook.
func (e *Engine) newRun(ctx context.Context) *automaton.Run {
	run := e.model.NewRun()
	if e.hooks.OnStep != nil {
		run.Observe(func(t domain.Transition, depth int) {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: e.base(domain.EventStep),
				Key:       t.Key,
				To:        t.To,
				Weight:    t.Weight.RatString(),
				Depth:     depth,
			})
		})
	}
	return run
}

// Accept returns the weight of y.
func (e *Engine) Accept(ctx context.Context, y domain.String) (*big.Rat, error) {
	w, err := e.newRun(ctx).Accept(y)
	if err != nil {
		e.logger.Error("accept failed", "input", y.String(), "err", err)
		return nil, fmt.Errorf("accept %q: %w", y.String(), err)
	}

	if e.hooks.OnAccept != nil {
		e.hooks.OnAccept(ctx, &domain.AcceptEvent{
			EventBase: e.base(domain.EventAccept),
			Length:    y.Len(),
			Weight:    w.RatString(),
			Zero:      w.Sign() == 0,
		})
	}
	return w, nil
}

// Trace is the path one string takes through the automaton.
type Trace struct {
	// States lists the states entered, starting with domain.Initial.
	States []domain.State
	// Current is the state the run ended in.
	Current domain.State
	Weight  *big.Rat
}

// Trace scores y like Accept and also records the states it visits.
// Hooks are not fired.
func (e *Engine) Trace(ctx context.Context, y domain.String) (*Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run := e.model.NewRun()
	tr := &Trace{States: []domain.State{domain.Initial}}
	run.Observe(func(t domain.Transition, depth int) {
		tr.States = append(tr.States, t.To)
	})

	w, err := run.Accept(y)
	if err != nil {
		return nil, fmt.Errorf("trace %q: %w", y.String(), err)
	}
	tr.Current = run.State()
	tr.Weight = w
	return tr, nil
}

// Generate samples one string using a random source seeded with seed.
// The same seed always yields the same sample.
func (e *Engine) Generate(ctx context.Context, seed int64) (*domain.Sample, error) {
	if seed == 0 {
		seed = automaton.DefaultSeed
	}
	return e.generate(ctx, uuid.NewString(), seed, automaton.NewRand(seed))
}

func (e *Engine) generate(ctx context.Context, id string, seed int64, rng *rand.Rand) (*domain.Sample, error) {
	start := e.now()
	run := e.newRun(ctx)
	y, w, err := run.Generate(ctx, rng)
	elapsed := e.now().Sub(start)

	if err != nil {
		e.generateFailed(ctx, elapsed, err)
		return nil, fmt.Errorf("generate (seed %d): %w", seed, err)
	}

	sample := &domain.Sample{
		ID:        id,
		Model:     e.name,
		Seed:      seed,
		Symbols:   []domain.Symbol(y),
		Text:      y.String(),
		Weight:    w.RatString(),
		Steps:     run.Steps(),
		CreatedAt: start,
	}

	if e.store != nil {
		if err := e.store.Save(ctx, sample); err != nil {
			err = fmt.Errorf("failed to save sample %s: %w", id, err)
			e.generateFailed(ctx, elapsed, err)
			return nil, err
		}
	}

	if e.hooks.OnGenerate != nil {
		e.hooks.OnGenerate(ctx, &domain.GenerateEvent{
			EventBase: e.base(domain.EventGenerate),
			Sample:    sample,
			Duration:  elapsed,
		})
	}
	e.logger.Debug("generated", "id", id, "text", sample.Text, "weight", sample.Weight, "steps", sample.Steps)
	return sample, nil
}

// generateFailed reports a failed generation to the hooks and the log.
func (e *Engine) generateFailed(ctx context.Context, elapsed time.Duration, err error) {
	if e.hooks.OnGenerate != nil {
		e.hooks.OnGenerate(ctx, &domain.GenerateEvent{
			EventBase: e.base(domain.EventGenerate),
			Duration:  elapsed,
			Err:       err,
		})
	}
	e.logger.Debug("generate failed", "err", err)
}

// Batch generates n samples concurrently. Sample i is drawn from the stream
// automaton.StreamSeed(seed, i) and records that seed, so the result does not
// depend on scheduling and any sample can be replayed with Generate.
// The first failure cancels the remaining work.
func (e *Engine) Batch(ctx context.Context, n int, seed int64) ([]domain.Sample, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid batch size %d", n)
	}

	batchID := uuid.NewString()
	samples := make([]domain.Sample, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			streamSeed := automaton.StreamSeed(seed, uint64(i))
			s, err := e.generate(gctx, fmt.Sprintf("%s-%06d", batchID, i), streamSeed, automaton.NewRand(streamSeed))
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			samples[i] = *s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("batch generated", "batch", batchID, "count", n, "seed", seed)
	return samples, nil
}

// Samples returns the stored samples of this model, oldest first.
// Without a store it returns nothing.
func (e *Engine) Samples(ctx context.Context) ([]*domain.Sample, error) {
	if e.store == nil {
		return nil, nil
	}
	return ports.LoadAll(ctx, e.store, e.name)
}

// Sample loads one stored sample.
func (e *Engine) Sample(ctx context.Context, id string) (*domain.Sample, error) {
	if e.store == nil {
		return nil, domain.ErrSampleNotFound
	}
	return e.store.Load(ctx, id)
}
