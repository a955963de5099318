package automaton

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/aretw0/ppda/pkg/domain"
)

// Generate resets the run and samples symbols until the terminal state is
// reached, returning the produced string and its weight.
//
// Termination is only almost-sure for well-formed automata, so generation
// is bounded by the automaton's MaxSteps (domain.ErrStepLimit) and by ctx.
func (r *Run) Generate(ctx context.Context, rng *rand.Rand) (domain.String, *big.Rat, error) {
	r.Reset()
	w := big.NewRat(1, 1)
	output := domain.String{}
	limit := r.a.maxSteps

	for {
		if err := ctx.Err(); err != nil {
			return output, nil, err
		}
		if limit > 0 && r.steps >= limit {
			return output, nil, fmt.Errorf("%w: %d steps", domain.ErrStepLimit, limit)
		}

		sym, err := r.Sample(rng)
		if err != nil {
			return output, nil, err
		}
		output.Append(sym)

		sw, err := r.Step(sym)
		if err != nil {
			return output, nil, err
		}
		w.Mul(w, sw)

		if r.state.IsTerminal() {
			return output, w, nil
		}
	}
}

// Generate samples a string on the default run with the automaton's own
// random source.
func (a *Automaton) Generate(ctx context.Context) (domain.String, *big.Rat, error) {
	return a.run.Generate(ctx, a.rng)
}
