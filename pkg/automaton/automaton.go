package automaton

import (
	"fmt"
	"math/big"
	"math/rand"
	"sync"

	"github.com/aretw0/ppda/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultMaxSteps bounds Generate when no explicit limit is configured.
const DefaultMaxSteps = 100000

// Automaton holds the transition and weight relation of a PPDA.
//
// δ and p are kept in a single ordered map keyed by (state, top, input), so
// every key present in one is present in the other.
type Automaton struct {
	mu sync.RWMutex

	sigma  *orderedSet[domain.Symbol]
	gamma  *orderedSet[domain.Symbol]
	states *orderedSet[domain.State]

	relation *orderedmap.OrderedMap[domain.Key, domain.Transition]

	// normalization cache, invalidated by Add
	checked bool
	normErr error

	maxSteps int
	rng      *rand.Rand
	run      *Run
}

// Option defines a functional option for configuring the Automaton.
type Option func(*Automaton)

// WithSeed seeds the automaton's own random source.
func WithSeed(seed int64) Option {
	return func(a *Automaton) {
		a.rng = NewRand(seed)
	}
}

// WithRand injects an explicit random source.
func WithRand(rng *rand.Rand) Option {
	return func(a *Automaton) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithMaxSteps bounds the number of steps of a single generation.
// Zero disables the bound.
func WithMaxSteps(n int) Option {
	return func(a *Automaton) {
		if n >= 0 {
			a.maxSteps = n
		}
	}
}

// New creates an empty automaton over the given alphabets.
// The bottom marker is always the first stack symbol, and Q starts as
// {Initial, Final}. Both alphabets grow as transitions are added.
func New(sigma []domain.Symbol, gamma []domain.Symbol, opts ...Option) *Automaton {
	a := &Automaton{
		sigma:    newOrderedSet[domain.Symbol](),
		gamma:    newOrderedSet(domain.Bottom),
		states:   newOrderedSet(domain.Initial, domain.Final),
		relation: orderedmap.New[domain.Key, domain.Transition](),
		maxSteps: DefaultMaxSteps,
	}
	for _, s := range sigma {
		if !s.IsNone() {
			a.sigma.add(s)
		}
	}
	for _, g := range gamma {
		if !g.IsNone() {
			a.gamma.add(g)
		}
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = NewRand(DefaultSeed)
	}

	a.run = a.NewRun()
	return a
}

// Add installs (or replaces) the transition for (from, top, input) together
// with its weight. Σ, Γ and Q are extended with every symbol and state
// mentioned. Normalization is not checked here.
func (a *Automaton) Add(from domain.State, top, input domain.Symbol, to domain.State, action domain.Action, push domain.Symbol, weight *big.Rat) error {
	if input.IsNone() {
		return fmt.Errorf("%w: empty input symbol", domain.ErrInvalidSymbol)
	}
	if top.IsNone() {
		return fmt.Errorf("%w: empty stack symbol", domain.ErrInvalidSymbol)
	}
	if action != domain.Noop && action != domain.Pop {
		return fmt.Errorf("unknown action %s", action)
	}
	if weight == nil || weight.Sign() < 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidWeight, weight)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.sigma.add(input)
	a.gamma.add(top)
	if !push.IsNone() {
		a.gamma.add(push)
	}
	a.states.add(from)
	a.states.add(to)

	key := domain.Key{State: from, Top: top, Input: input}
	a.relation.Set(key, domain.Transition{
		Key:    key,
		To:     to,
		Action: action,
		Push:   push,
		Weight: new(big.Rat).Set(weight),
	})
	a.checked = false
	a.normErr = nil
	return nil
}

// MustAdd is like Add but panics on invalid arguments.
// It is intended for package-level model definitions.
func (a *Automaton) MustAdd(from domain.State, top, input domain.Symbol, to domain.State, action domain.Action, push domain.Symbol, weight *big.Rat) {
	if err := a.Add(from, top, input, to, action, push, weight); err != nil {
		panic(err)
	}
}

// WeightOf returns p(key). It is total: absent keys have weight 0.
// The returned value is a copy.
func (a *Automaton) WeightOf(key domain.Key) *big.Rat {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return new(big.Rat).Set(a.weightLocked(key))
}

var zero = new(big.Rat)

// weightLocked must not be mutated by callers.
func (a *Automaton) weightLocked(key domain.Key) *big.Rat {
	t, ok := a.relation.Get(key)
	if !ok {
		return zero
	}
	return t.Weight
}

// TransitionOf returns δ(key) with its weight.
func (a *Automaton) TransitionOf(key domain.Key) (domain.Transition, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	t, ok := a.relation.Get(key)
	if !ok {
		return domain.Transition{}, false
	}
	t.Weight = new(big.Rat).Set(t.Weight)
	return t, true
}

// Transitions lists the relation in first-insertion order of its keys.
func (a *Automaton) Transitions() []domain.Transition {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Transition, 0, a.relation.Len())
	for pair := a.relation.Oldest(); pair != nil; pair = pair.Next() {
		t := pair.Value
		t.Weight = new(big.Rat).Set(t.Weight)
		out = append(out, t)
	}
	return out
}

// Alphabet returns Σ in its canonical (first-insertion) order.
func (a *Automaton) Alphabet() []domain.Symbol {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sigma.items()
}

// StackAlphabet returns Γ, bottom marker first.
func (a *Automaton) StackAlphabet() []domain.Symbol {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.gamma.items()
}

// States returns Q, starting with Initial and Final.
func (a *Automaton) States() []domain.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.states.items()
}

// MaxSteps returns the generation step bound (0 means unbounded).
func (a *Automaton) MaxSteps() int {
	return a.maxSteps
}

// NewRun returns a fresh run over this automaton, positioned at the initial
// configuration.
func (a *Automaton) NewRun() *Run {
	r := &Run{a: a}
	r.Reset()
	return r
}

// Reset reinitializes the default run without touching the relation.
func (a *Automaton) Reset() {
	a.run.Reset()
}

// DefaultRun exposes the run used by Step, Accept and Generate.
func (a *Automaton) DefaultRun() *Run {
	return a.run
}

// Step executes one transition on the default run.
func (a *Automaton) Step(input domain.Symbol) (*big.Rat, error) {
	return a.run.Step(input)
}
