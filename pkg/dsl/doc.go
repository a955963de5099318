/*
Package dsl provides a Go DSL for programmatically constructing automata.

It is a fluent front-end over automaton.Add: every rule names the
configuration it leaves from and the input symbol it consumes, then describes
the stack effect, the target state and the weight.

Example usage:

	b := dsl.New().Alphabet("a", "b", "$").Stack("A")

	b.On(domain.Initial, domain.Bottom, "a").Push("A").Loop().Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "$").Terminal().Weight(1, 2)
	b.On(domain.Initial, "A", "a").Push("A").Loop().Weight(1, 2)
	b.On(domain.Initial, "A", "b").Pop().Goto(1).Weight(1, 2)
	b.On(1, "A", "b").Pop().Loop()
	b.On(1, domain.Bottom, "$").Terminal()

	a, err := b.Build(automaton.WithSeed(42))

Rules default to weight 1 and to staying in their source state with an
untouched stack.
*/
package dsl
