package game

import "math"

// Linear-congruential generator constants (Numerical Recipes).
// The modulus is 2^32, applied by natural uint32 wraparound.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Hash advances the generator by one step. Same seed in, same seed out,
// every time.
func Hash(seed uint32) uint32 {
	return seed*lcgMultiplier + lcgIncrement
}

// Scale remaps a generator value linearly onto [-1, 1].
func Scale(seed uint32) float64 {
	return float64(seed)/float64(math.MaxUint32)*2 - 1
}
