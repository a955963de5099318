// Package catalog is a registry of named automaton factories, including the
// built-in reference models.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
)

// Factory builds a fresh automaton. Each call returns an independent instance.
type Factory func(opts ...automaton.Option) (*automaton.Automaton, error)

// Model describes a registered automaton.
type Model struct {
	Name        string
	Description string
	Build       Factory
}

// Registry manages the available models.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]Model),
	}
}

// Register adds a model to the registry.
// If a model with the same name exists, it is overwritten.
func (r *Registry) Register(m Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[m.Name] = m
}

// Get looks up a model by name.
func (r *Registry) Get(name string) (Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	return m, nil
}

// Build looks up a model and builds a fresh automaton from it.
func (r *Registry) Build(name string, opts ...automaton.Option) (*automaton.Automaton, error) {
	m, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	a, err := m.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build model %s: %w", name, err)
	}
	return a, nil
}

// Models returns every registered model sorted by name.
func (r *Registry) Models() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	models := r.Models()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}

// Default returns a registry preloaded with the built-in models.
func Default() *Registry {
	r := NewRegistry()
	for _, m := range Builtin() {
		r.Register(m)
	}
	return r
}
