package ppda

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/aretw0/ppda/pkg/ports"
)

// Workspace serves one Engine per registered model. Engines are built on
// first use and share the same store, hooks and logger.
type Workspace struct {
	registry   *catalog.Registry
	store      ports.SampleStore
	modelOpts  []automaton.Option
	engineOpts []Option

	mu      sync.Mutex
	engines map[string]*Engine
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*Workspace)

// WithModelOptions applies opts to every automaton the workspace builds.
func WithModelOptions(opts ...automaton.Option) WorkspaceOption {
	return func(w *Workspace) {
		w.modelOpts = append(w.modelOpts, opts...)
	}
}

// WithEngineOptions applies opts to every engine the workspace builds.
func WithEngineOptions(opts ...Option) WorkspaceOption {
	return func(w *Workspace) {
		w.engineOpts = append(w.engineOpts, opts...)
	}
}

// WithStore sets the sample store shared by all engines.
func WithStore(store ports.SampleStore) WorkspaceOption {
	return func(w *Workspace) {
		w.store = store
	}
}

// NewWorkspace creates a workspace over registry. A nil registry means
// catalog.Default().
func NewWorkspace(registry *catalog.Registry, opts ...WorkspaceOption) *Workspace {
	if registry == nil {
		registry = catalog.Default()
	}
	w := &Workspace{
		registry: registry,
		engines:  make(map[string]*Engine),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Models lists the registered models sorted by name.
func (w *Workspace) Models() []catalog.Model {
	return w.registry.Models()
}

// Engine returns the engine of the named model, building it on first use.
// Unknown names yield domain.ErrModelNotFound.
func (w *Workspace) Engine(name string) (*Engine, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if eng, ok := w.engines[name]; ok {
		return eng, nil
	}

	model, err := w.registry.Build(name, w.modelOpts...)
	if err != nil {
		return nil, err
	}

	opts := append([]Option{}, w.engineOpts...)
	if w.store != nil {
		opts = append(opts, WithSampleStore(w.store))
	}
	eng, err := New(name, model, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine %s: %w", name, err)
	}
	w.engines[name] = eng
	return eng, nil
}

// Samples returns every stored sample across models, oldest first.
func (w *Workspace) Samples(ctx context.Context) ([]*domain.Sample, error) {
	if w.store == nil {
		return nil, nil
	}
	return ports.LoadAll(ctx, w.store, "")
}

// Sample loads one stored sample by ID.
func (w *Workspace) Sample(ctx context.Context, id string) (*domain.Sample, error) {
	if w.store == nil {
		return nil, domain.ErrSampleNotFound
	}
	return w.store.Load(ctx, id)
}
