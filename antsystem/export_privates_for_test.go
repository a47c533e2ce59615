// Package antsystem - exports of private helpers for external tests only.
// Nothing here is part of the public API.
package antsystem

import "math/rand"

// WalkForTest runs a single ant walk with its own seeded stream, bypassing
// the round orchestration, so trace invariants can be tested in isolation.
func (c *Colony) WalkForTest(start, end, seed int64) []int64 {
	return c.walk(start, end, rngFromSeed(seed))
}

// RNGFromSeedForTest exposes the seed policy.
func RNGFromSeedForTest(seed int64) *rand.Rand { return rngFromSeed(seed) }

// DeriveSeedForTest exposes the SplitMix64 stream derivation.
func DeriveSeedForTest(parent int64, stream uint64) int64 { return deriveSeed(parent, stream) }
