package crossval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFoldSplitCoversUniverseWithRemainderInLastFold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	folds, err := KFoldSplit(10, 3, rng)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	assert.Len(t, folds[0].Val, 3)
	assert.Len(t, folds[1].Val, 3)
	assert.Len(t, folds[2].Val, 4)

	seen := map[int]int{}
	for _, f := range folds {
		for _, idx := range f.Val {
			seen[idx]++
		}
		assert.Len(t, f.Train, 10-len(f.Val))
	}
	assert.Len(t, seen, 10)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestKFoldSplitExactDivision(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	folds, err := KFoldSplit(9, 3, rng)
	require.NoError(t, err)
	for _, f := range folds {
		assert.Len(t, f.Val, 3)
	}
}

func TestKFoldSplitRejectsTooFewSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := KFoldSplit(2, 5, rng)
	assert.Error(t, err)
}

func TestKFoldSplitRejectsKLessThanTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := KFoldSplit(10, 1, rng)
	assert.Error(t, err)
}
