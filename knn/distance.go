package knn

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// squaredEuclidean computes the squared Euclidean distance between a and
// b, skipping labelIndex on both sides so the label never contributes to
// the distance.
func squaredEuclidean(a, b dataframe.Sample, labelIndex int) float64 {
	diffs := make([]float64, 0, len(a))
	for i := range a {
		if i == labelIndex {
			continue
		}
		diffs = append(diffs, a[i]-b[i])
	}
	return floats.Dot(diffs, diffs)
}

// neighbor pairs a reference sample's index with its distance to a query.
type neighbor struct {
	index int
	dist  float64
}

// nearest returns the k nearest neighbors of query among refs, stable-sorted
// by ascending absolute distance so ties preserve the reference set's
// original order — required for the condensed/edited trainers' one-pass
// determinism.
func nearest(refs []dataframe.Sample, query dataframe.Sample, labelIndex, k int) []neighbor {
	all := make([]neighbor, len(refs))
	for i, r := range refs {
		all[i] = neighbor{index: i, dist: squaredEuclidean(r, query, labelIndex)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return math.Abs(all[i].dist) < math.Abs(all[j].dist)
	})
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

// modeLabel returns the EPS-keyed mode of the labels at the given
// reference indices.
func modeLabel(refs []dataframe.Sample, labelIndex int, ns []neighbor) float64 {
	counts := map[int64]int{}
	order := map[int64]float64{}
	keys := make([]int64, 0, len(ns))
	for _, n := range ns {
		label := refs[n.index][labelIndex]
		key := core.ModeKey(label)
		if _, seen := order[key]; !seen {
			order[key] = label
			keys = append(keys, key)
		}
		counts[key]++
	}
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return order[best]
}

// kernelMean returns the exp(-gamma*d)-weighted mean of the labels at the
// given neighbors.
func kernelMean(refs []dataframe.Sample, labelIndex int, gamma float64, ns []neighbor) float64 {
	var weightSum, weightedLabelSum float64
	for _, n := range ns {
		w := math.Exp(-gamma * n.dist)
		weightSum += w
		weightedLabelSum += w * refs[n.index][labelIndex]
	}
	if weightSum == 0 {
		return modeLabel(refs, labelIndex, ns)
	}
	return weightedLabelSum / weightSum
}
