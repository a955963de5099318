package catalog

import (
	"github.com/aretw0/ppda/pkg/automaton"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/aretw0/ppda/pkg/dsl"
)

// Builtin returns the reference models shipped with the engine.
func Builtin() []Model {
	return []Model{
		{Name: "single", Description: "One deterministic symbol: always generates \"a\" with weight 1.", Build: Single},
		{Name: "coin", Description: "Fair coin over {a, b}; each outcome has weight 1/2.", Build: Coin},
		{Name: "dyck", Description: "Balanced parentheses terminated by $, with a recurrent stack walk.", Build: Dyck},
		{Name: "anbn", Description: "a^n b^n $ with geometrically distributed n.", Build: AnBn},
		{Name: "parity", Description: "a^n $ tracking the parity of n by replacing the stack top.", Build: Parity},
	}
}

// Single is one transition (initial, ⊥, a) → final with weight 1.
func Single(opts ...automaton.Option) (*automaton.Automaton, error) {
	b := dsl.New().Alphabet("a")
	b.On(domain.Initial, domain.Bottom, "a").Terminal()
	return b.Build(opts...)
}

// Coin picks a or b with weight 1/2 each and stops.
func Coin(opts ...automaton.Option) (*automaton.Automaton, error) {
	b := dsl.New().Alphabet("a", "b")
	b.On(domain.Initial, domain.Bottom, "a").Terminal().Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "b").Terminal().Weight(1, 2)
	return b.Build(opts...)
}

// Dyck generates balanced parentheses followed by $.
// Above the bottom the walk closes with weight 2/3, so every opened
// parenthesis is closed almost surely.
func Dyck(opts ...automaton.Option) (*automaton.Automaton, error) {
	b := dsl.New().Alphabet("(", ")", "$").Stack("(")
	b.On(domain.Initial, domain.Bottom, "(").Push("(").Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "$").Terminal().Weight(1, 2)
	b.On(domain.Initial, "(", "(").Push("(").Weight(1, 3)
	b.On(domain.Initial, "(", ")").Pop().Weight(2, 3)
	return b.Build(opts...)
}

// AnBn generates a^n b^n $.
func AnBn(opts ...automaton.Option) (*automaton.Automaton, error) {
	const closing domain.State = 1
	b := dsl.New().Alphabet("a", "b", "$").Stack("A")
	b.On(domain.Initial, domain.Bottom, "a").Push("A").Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "$").Terminal().Weight(1, 2)
	b.On(domain.Initial, "A", "a").Push("A").Weight(1, 2)
	b.On(domain.Initial, "A", "b").Pop().Goto(closing).Weight(1, 2)
	b.On(closing, "A", "b").Pop()
	b.On(closing, domain.Bottom, "$").Terminal()
	return b.Build(opts...)
}

// Parity generates a^n $ keeping O (odd) or E (even) on the stack top.
// The stack never grows beyond one symbol above the bottom.
func Parity(opts ...automaton.Option) (*automaton.Automaton, error) {
	b := dsl.New().Alphabet("a", "$").Stack("O", "E")
	b.On(domain.Initial, domain.Bottom, "a").Push("O").Weight(1, 2)
	b.On(domain.Initial, domain.Bottom, "$").Terminal().Weight(1, 2)
	b.On(domain.Initial, "O", "a").Replace("E").Weight(1, 2)
	b.On(domain.Initial, "O", "$").Pop().Terminal().Weight(1, 2)
	b.On(domain.Initial, "E", "a").Replace("O").Weight(1, 2)
	b.On(domain.Initial, "E", "$").Pop().Terminal().Weight(1, 2)
	return b.Build(opts...)
}
