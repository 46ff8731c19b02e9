package crossval

import (
	"math/rand"
	"sort"

	"github.com/go-tabpipe/tabpipe/core"
)

// StratifiedSplit groups indices by label (via core.ModeKey, so labels
// within EPS of each other are one class), shuffles each group
// independently with rng, then splits each shuffled group into k
// contiguous slabs with that class's own n_class%k remainder absorbed by
// the class's LAST slab. Fold i's validation set is the union, across
// classes, of class slab i. Every fold except the last holds exactly
// n_class/k members of each class; the last holds that many plus the
// class's whole remainder, so it can exceed the others by up to k-1
// members of a class. A class with fewer than k members simply contributes empty
// slabs to the early folds and its full membership to the last one —
// there is no minimum-class-size rejection.
func StratifiedSplit(labels []core.Numeric, k int, rng *rand.Rand) ([]Fold, error) {
	if k < 2 {
		return nil, core.New(core.InvalidConfig, "stratified k-fold requires k >= 2")
	}
	n := len(labels)
	if n == 0 {
		return nil, core.New(core.EmptyInput, "stratified k-fold requires at least one sample")
	}

	groups := map[int64][]int{}
	for i, v := range labels {
		key := core.ModeKey(v)
		groups[key] = append(groups[key], i)
	}

	classKeys := make([]int64, 0, len(groups))
	for key := range groups {
		classKeys = append(classKeys, key)
	}
	sort.Slice(classKeys, func(i, j int) bool { return classKeys[i] < classKeys[j] })

	val := make([][]int, k)
	for _, key := range classKeys {
		idxs := append([]int(nil), groups[key]...)
		rng.Shuffle(len(idxs), func(i, j int) { idxs[i], idxs[j] = idxs[j], idxs[i] })

		m := len(idxs)
		base := m / k
		boundaries := make([]int, k+1)
		for i := 0; i < k; i++ {
			boundaries[i+1] = boundaries[i] + base
		}
		boundaries[k] = m
		for i := 0; i < k; i++ {
			val[i] = append(val[i], idxs[boundaries[i]:boundaries[i+1]]...)
		}
	}

	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		inVal := make(map[int]struct{}, len(val[i]))
		for _, idx := range val[i] {
			inVal[idx] = struct{}{}
		}
		train := make([]int, 0, n-len(val[i]))
		for idx := 0; idx < n; idx++ {
			if _, skip := inVal[idx]; !skip {
				train = append(train, idx)
			}
		}
		folds[i] = Fold{Train: train, Val: val[i]}
	}
	return folds, nil
}
