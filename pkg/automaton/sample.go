package automaton

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/aretw0/ppda/pkg/domain"
)

// Sample draws one input symbol from the categorical distribution of the
// current configuration.
//
// Σ is walked in its canonical order accumulating weights; the first symbol
// whose cumulative weight exceeds a uniform draw r ∈ [0, 1) is returned, so a
// zero-weight symbol is never chosen. The automaton must be locally
// normalized.
func (r *Run) Sample(rng *rand.Rand) (domain.Symbol, error) {
	if err := r.a.CheckNormalized(); err != nil {
		return domain.NoSymbol, err
	}

	// Float64 is finite, so SetFloat64 is exact and never nil.
	draw := new(big.Rat).SetFloat64(rng.Float64())

	r.a.mu.RLock()
	defer r.a.mu.RUnlock()

	top := r.Top()
	cum := new(big.Rat)
	for pair := r.a.sigma.m.Oldest(); pair != nil; pair = pair.Next() {
		w := r.a.weightLocked(domain.Key{State: r.state, Top: top, Input: pair.Key})
		if w.Sign() == 0 {
			continue
		}
		cum.Add(cum, w)
		if cum.Cmp(draw) > 0 {
			return pair.Key, nil
		}
	}

	return domain.NoSymbol, fmt.Errorf("%w: (%s, %s)", domain.ErrDeadConfiguration, r.state, top)
}
