package services

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the source of every random choice made while generating sessions.
//
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewRandomSource creates a PCG-backed random source.
// A nil seed seeds the generator from the current time.
func NewRandomSource(seed *uint64) RandomSource {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// shuffle permutes items in place using Fisher-Yates
func shuffle[T any](items []T, rng RandomSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
