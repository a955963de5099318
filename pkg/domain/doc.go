/*
Package domain contains the core domain models of the ppda engine.

It defines the vocabulary shared by every other package: input and stack
symbols, the strings built from them, automaton states and stack actions,
transitions and the records produced by generation. The package is kept pure
and free of I/O, engine logic or persistence concerns.

# Key Entities

  - Symbol: an opaque token of the input alphabet (Σ) or the stack alphabet (Γ).
  - String: an ordered, appendable sequence of symbols.
  - State: an automaton state, with the Initial and Final sentinels.
  - Transition: one entry of the transition relation together with its weight.
  - Sample: the persisted outcome of one generation.
*/
package domain
