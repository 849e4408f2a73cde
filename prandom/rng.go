// RNG utilities for the product-replacement randomizer.
//
// Adapted from the teacher's tsp/rng.go: a single deterministic RNG factory
// keyed off an explicit seed (never a time-based source), plus a
// SplitMix64-style mixer for deriving independent sub-streams when a
// caller needs more than one randomizer from a single base seed (e.g. BSGS
// spinning up a scratch Randomizer for randomized Schreier-Sims from the
// same seed that drove the degree's alt/sym test).
package prandom

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass Seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. Policy: seed == 0 uses
// defaultSeed; otherwise the provided seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, so that sub-streams derived
// from one base seed are decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base is nil, defaultSeed is used as the
// parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
