package automaton

import "math/rand"

// DefaultSeed is used when no seed is configured or the seed is 0.
const DefaultSeed int64 = 42

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is NOT goroutine-safe. Do not share one across runs that
// execute concurrently.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand returns an independent deterministic stream for (seed, stream).
// The same pair always yields the same sequence, independent of call order.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	return NewRand(StreamSeed(seed, stream))
}

// StreamSeed is the effective seed used by DeriveRand, so that
// NewRand(StreamSeed(seed, i)) replays stream i on its own.
func StreamSeed(seed int64, stream uint64) int64 {
	if seed == 0 {
		seed = DefaultSeed
	}
	return DeriveSeed(seed, stream)
}
