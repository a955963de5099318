package automaton

import (
	"math/big"

	"github.com/aretw0/ppda/pkg/domain"
)

// Accept resets the run and returns the product of the weights of the
// transitions taken while consuming y.
//
// Reaching the terminal state is not required: the empty string scores 1.
// Once a symbol has no transition the result is 0 and the rest of y is not
// consumed, since every further factor is absorbed. Construction errors in
// transitions after that point (a pop of the bottom marker) are therefore
// not reported.
func (r *Run) Accept(y domain.String) (*big.Rat, error) {
	r.Reset()
	w := big.NewRat(1, 1)
	for _, sym := range y {
		sw, err := r.Step(sym)
		if err != nil {
			return nil, err
		}
		w.Mul(w, sw)
		if w.Sign() == 0 {
			break
		}
	}
	return w, nil
}

// Accept scores y on the default run.
func (a *Automaton) Accept(y domain.String) (*big.Rat, error) {
	return a.run.Accept(y)
}
