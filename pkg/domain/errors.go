package domain

import "errors"

// ErrPopBottom is returned when a transition tries to pop the bottom-of-stack marker.
// It always indicates a malformed automaton.
var ErrPopBottom = errors.New("tried to pop the bottom of the stack")

// ErrNotNormalized is returned when sampling from an automaton whose weights
// do not sum to one for some configuration.
var ErrNotNormalized = errors.New("automaton is not locally normalized")

// ErrStepLimit is returned when a generation exceeds the configured step bound.
var ErrStepLimit = errors.New("generation exceeded step limit")

// ErrDeadConfiguration is returned when generation reaches a non-terminal
// configuration with no outgoing transition.
var ErrDeadConfiguration = errors.New("no outgoing transition from configuration")

// ErrInvalidSymbol is returned when a transition mentions the empty symbol
// where a real symbol is required.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrInvalidWeight is returned for nil or negative weights.
var ErrInvalidWeight = errors.New("invalid weight")

// ErrModelNotFound is returned when a model name is not registered.
var ErrModelNotFound = errors.New("model not found")

// ErrSampleNotFound is returned when a sample ID cannot be found in the store.
var ErrSampleNotFound = errors.New("sample not found")
