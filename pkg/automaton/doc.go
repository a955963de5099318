/*
Package automaton implements deterministic probabilistic pushdown automata (PPDA).

A PPDA is a 5-tuple <Q, Γ, Σ, δ, p>: a set of states Q, a stack alphabet Γ, an
input alphabet Σ, a transition function δ : Q × Γ × Σ → Q × Action × (Γ ∪ {none})
and a weighting function p : Q × Γ × Σ → ℚ. Weights are exact rationals
(math/big.Rat) so the local normalization check is an equality, not a
tolerance.

# Lifecycle

An Automaton is populated with Add and is then used read-only. Execution state
(current state and stack) lives in a Run. Every Automaton embeds a default Run
and its own random source, so Reset, Step, Accept and Generate can be called on
the Automaton directly; those calls share that run and must not be used
concurrently. NewRun returns an independent run over the same relation for
concurrent callers.

	a := automaton.New(domain.Symbols("a", "b"), nil, automaton.WithSeed(7))
	_ = a.Add(domain.Initial, domain.Bottom, "a", domain.Final, domain.Noop, domain.NoSymbol, big.NewRat(1, 2))
	_ = a.Add(domain.Initial, domain.Bottom, "b", domain.Final, domain.Noop, domain.NoSymbol, big.NewRat(1, 2))

	y, w, err := a.Generate(ctx) // "a" or "b", weight 1/2

# Errors

Popping the bottom marker yields a *StepError wrapping domain.ErrPopBottom.
Sampling from an automaton that is not locally normalized yields a
*NormalizationError wrapping domain.ErrNotNormalized. Both indicate a
construction bug. A missing transition is not an error: it has weight 0.
Accept stops at the first zero factor, so a construction error that would only
be hit after an absorbed prefix goes unreported.
*/
package automaton
