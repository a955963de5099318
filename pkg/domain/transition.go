package domain

import "math/big"

// Key addresses one entry of the transition relation: the current state, the
// symbol on top of the stack and the input symbol being consumed.
type Key struct {
	State State  `json:"state"`
	Top   Symbol `json:"top"`
	Input Symbol `json:"input"`
}

// Transition is one entry of the relation together with its weight.
// Push is NoSymbol when nothing is pushed.
type Transition struct {
	Key
	To     State    `json:"to"`
	Action Action   `json:"action"`
	Push   Symbol   `json:"push,omitempty"`
	Weight *big.Rat `json:"weight"`
}
