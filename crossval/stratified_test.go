package crossval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStratifiedSplitBalancesClasses(t *testing.T) {
	labels := make([]float64, 0, 20)
	for i := 0; i < 10; i++ {
		labels = append(labels, 0)
	}
	for i := 0; i < 10; i++ {
		labels = append(labels, 1)
	}

	rng := rand.New(rand.NewSource(1))
	folds, err := StratifiedSplit(labels, 4, rng)
	require.NoError(t, err)
	require.Len(t, folds, 4)

	for _, f := range folds {
		zeros, ones := 0, 0
		for _, idx := range f.Val {
			if labels[idx] == 0 {
				zeros++
			} else {
				ones++
			}
		}
		// ceil(10/4) = 3; the early folds hold 2 of each class and the
		// last fold holds 2 plus the class's remainder of 2, i.e. 4.
		assert.InDelta(t, 3, zeros, 1)
		assert.InDelta(t, 3, ones, 1)
	}
}

func TestStratifiedSplitNeverDropsClassOne(t *testing.T) {
	labels := []float64{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}
	rng := rand.New(rand.NewSource(2))
	folds, err := StratifiedSplit(labels, 3, rng)
	require.NoError(t, err)
	for _, f := range folds {
		ones := 0
		for _, idx := range f.Val {
			if labels[idx] == 1 {
				ones++
			}
		}
		assert.GreaterOrEqual(t, ones, 1)
	}
}

func TestStratifiedSplitAllowsClassSmallerThanK(t *testing.T) {
	labels := []float64{0, 0, 0, 1}
	rng := rand.New(rand.NewSource(1))
	folds, err := StratifiedSplit(labels, 3, rng)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	seen := map[int]bool{}
	for _, f := range folds {
		for _, idx := range f.Val {
			assert.False(t, seen[idx], "index %d assigned to more than one fold's validation set", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, len(labels))

	classOneCount := 0
	for _, idx := range folds[len(folds)-1].Val {
		if labels[idx] == 1 {
			classOneCount++
		}
	}
	assert.Equal(t, 1, classOneCount, "the lone class-1 sample must land in the last slab")
}
