// Package crossval splits a sample set into folds for cross-validation,
// per spec's plain and stratified k-fold partitioners.
package crossval

import (
	"fmt"
	"math/rand"

	"github.com/go-tabpipe/tabpipe/core"
)

// Fold is one train/validation split: disjoint index sets into the
// original sample set, together covering it exactly once per
// partitioning round.
type Fold struct {
	Train []int
	Val   []int
}

// Kind names a partitioning strategy.
type Kind string

const (
	KFold           Kind = "kfold"
	StratifiedKFold Kind = "stratified-kfold"
)

// Partition dispatches to the partitioner named by kind. labels is used
// only by the stratified partitioner, to group indices by class; it is
// ignored by plain k-fold. rng drives the uniform shuffle both
// partitioners apply before slicing; pass the director's injected PRNG so
// runs stay reproducible under a pinned seed. This is the closed
// dispatcher replacing a string-keyed trait-object registry: partitioners
// are an exhaustive, compile-time-known set, not a plugin surface.
func Partition(kind Kind, n int, k int, labels []core.Numeric, rng *rand.Rand) ([]Fold, error) {
	switch kind {
	case KFold:
		return KFoldSplit(n, k, rng)
	case StratifiedKFold:
		return StratifiedSplit(labels, k, rng)
	default:
		return nil, core.New(core.NotFound, fmt.Sprintf("unknown partitioner kind %q", kind))
	}
}
