package services

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomSource_SameSeedSameSequence(t *testing.T) {
	seed := uint64(42)
	a := NewRandomSource(&seed)
	b := NewRandomSource(&seed)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRandomSource_Unseeded(t *testing.T) {
	rng := NewRandomSource(nil)

	for i := 0; i < 100; i++ {
		n := rng.IntN(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
		f := rng.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	seed := uint64(7)
	rng := NewRandomSource(&seed)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	shuffled := slices.Clone(items)
	shuffle(shuffled, rng)

	sorted := slices.Clone(shuffled)
	slices.Sort(sorted)
	assert.Equal(t, items, sorted)
}
