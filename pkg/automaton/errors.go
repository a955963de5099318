package automaton

import (
	"fmt"
	"math/big"

	"github.com/aretw0/ppda/pkg/domain"
)

// StepError reports a transition that could not be executed.
type StepError struct {
	Key domain.Key
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step (%s, %s, %s): %v", e.Key.State, e.Key.Top, e.Key.Input, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NormalizationError identifies a (state, stack-top) pair whose outgoing
// weights do not sum to one.
type NormalizationError struct {
	State domain.State
	Top   domain.Symbol
	Sum   *big.Rat
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%v: (%s, %s) sums to %s", domain.ErrNotNormalized, e.State, e.Top, e.Sum.RatString())
}

func (e *NormalizationError) Unwrap() error {
	return domain.ErrNotNormalized
}
