package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// Uniform maps a [0,1) draw from rnd onto [lo, hi)
func Uniform(lo, hi float64, rnd func() float64) float64 {
	return lo + rnd()*(hi-lo)
}

// PickIndex maps a [0,1) draw from rnd onto an index in [0, n).
// Returns -1 when n is not positive.
func PickIndex(n int, rnd func() float64) int {
	if n <= 0 {
		return -1
	}
	idx := int(rnd() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// IntFromFloat adapts a [0,1) source into an inclusive integer generator,
// so tests can drive both float and int rolls from one scripted sequence.
func IntFromFloat(rnd func() float64) func(min, max int) int {
	return func(min, max int) int {
		if min > max {
			return min
		}
		return min + PickIndex(max-min+1, rnd)
	}
}
