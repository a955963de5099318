package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	a := NewRand(0)
	b := NewRand(DefaultSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, b.Int63(), a.Int63())
	}
}

func TestDeriveRand_IndependentStreams(t *testing.T) {
	s0 := DeriveRand(9, 0)
	s0again := DeriveRand(9, 0)
	s1 := DeriveRand(9, 1)

	v0, v0again, v1 := s0.Int63(), s0again.Int63(), s1.Int63()
	assert.Equal(t, v0, v0again)
	assert.NotEqual(t, v0, v1)
	assert.NotEqual(t, DeriveSeed(9, 0), DeriveSeed(10, 0))
}

func TestOrderedSet(t *testing.T) {
	s := newOrderedSet("b", "a")
	assert.False(t, s.add("b"))
	assert.True(t, s.add("c"))
	assert.True(t, s.has("a"))
	assert.False(t, s.has("z"))
	assert.Equal(t, 3, s.len())
	assert.Equal(t, []string{"b", "a", "c"}, s.items())
}

func TestStreamSeed_ReplaysStream(t *testing.T) {
	derived := DeriveRand(7, 3)
	replayed := NewRand(StreamSeed(7, 3))
	for i := 0; i < 10; i++ {
		assert.Equal(t, derived.Float64(), replayed.Float64())
	}
}
