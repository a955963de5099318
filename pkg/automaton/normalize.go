package automaton

import (
	"math/big"

	"github.com/aretw0/ppda/pkg/domain"
)

var one = big.NewRat(1, 1)

// IsNormalized reports whether the automaton is locally normalized.
func (a *Automaton) IsNormalized() bool {
	return a.CheckNormalized() == nil
}

// CheckNormalized verifies that, for every non-terminal state and stack
// symbol with at least one outgoing transition, the weights over Σ sum to
// exactly one. The first offending pair is returned as a *NormalizationError.
// Pairs without transitions are exempt.
//
// The result is cached until the next Add.
func (a *Automaton) CheckNormalized() error {
	a.mu.RLock()
	if a.checked {
		err := a.normErr
		a.mu.RUnlock()
		return err
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.checked {
		a.normErr = a.checkLocked()
		a.checked = true
	}
	return a.normErr
}

func (a *Automaton) checkLocked() error {
	sigma := a.sigma.items()
	for _, q := range a.states.items() {
		if q.IsTerminal() {
			continue
		}
		for _, top := range a.gamma.items() {
			sum := new(big.Rat)
			present := false
			for _, sym := range sigma {
				key := domain.Key{State: q, Top: top, Input: sym}
				if _, ok := a.relation.Get(key); ok {
					present = true
				}
				sum.Add(sum, a.weightLocked(key))
			}
			if present && sum.Cmp(one) != 0 {
				return &NormalizationError{State: q, Top: top, Sum: sum}
			}
		}
	}
	return nil
}
