package crossval

import (
	"fmt"
	"math/rand"

	"github.com/go-tabpipe/tabpipe/core"
)

// KFoldSplit shuffles the index range [0, n) uniformly at random with rng,
// then splits the shuffled list into k contiguous folds. Each fold gets
// n/k elements except the LAST fold, which additionally absorbs the full
// n%k remainder. Fold i's validation set is its slab of the shuffled
// list; its training set is every other shuffled index.
func KFoldSplit(n int, k int, rng *rand.Rand) ([]Fold, error) {
	if k < 2 {
		return nil, core.New(core.InvalidConfig, "k-fold requires k >= 2")
	}
	if n < k {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("k-fold requires at least k=%d samples, got %d", k, n))
	}

	shuffled := make([]int, n)
	for i := range shuffled {
		shuffled[i] = i
	}
	rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	base := n / k
	boundaries := make([]int, k+1)
	for i := 0; i < k; i++ {
		boundaries[i+1] = boundaries[i] + base
	}
	boundaries[k] = n // last fold absorbs the remainder

	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		lo, hi := boundaries[i], boundaries[i+1]
		val := append([]int(nil), shuffled[lo:hi]...)
		train := make([]int, 0, n-len(val))
		train = append(train, shuffled[:lo]...)
		train = append(train, shuffled[hi:]...)
		folds[i] = Fold{Train: train, Val: val}
	}
	return folds, nil
}
