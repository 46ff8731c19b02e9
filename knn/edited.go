package knn

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// EditedBuilder prunes its reference set in one reverse pass over the
// training set: starting from the full set, each sample (visited from
// last to first) is dropped if the rest of the surviving reference set —
// voting as a whole, per the "misclassified by R \ {r}" coverage
// invariant, not just its num_neighbours-nearest — already classifies it
// correctly. What survives is the boundary-adjacent subset. Gamma
// defaults to the sample standard deviation of the full training set's
// labels and epsilon defaults to core.EPS; both are overridable via the
// "gamma"/"epsilon" hyperparameters.
type EditedBuilder struct{}

func (EditedBuilder) Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error) {
	if err := validateLabelIndex(training, labelIndex); err != nil {
		return nil, err
	}
	k, err := parseK(hp)
	if err != nil {
		return nil, err
	}
	gamma, err := parseGamma(hp, stat.StdDev(labelsOf(training, labelIndex), nil))
	if err != nil {
		return nil, err
	}
	epsilon, err := parseEpsilon(hp)
	if err != nil {
		return nil, err
	}

	keep := make([]bool, len(training))
	for i := range keep {
		keep[i] = true
	}

	for i := len(training) - 1; i >= 0; i-- {
		remaining := make([]dataframe.Sample, 0, len(training)-1)
		for j := range training {
			if j != i && keep[j] {
				remaining = append(remaining, training[j])
			}
		}
		if len(remaining) == 0 {
			continue
		}
		probe := &knnModel{refs: remaining, labelIndex: labelIndex, k: len(remaining), gamma: gamma}
		label, err := probe.Label(training[i])
		if err != nil {
			return nil, err
		}
		if math.Abs(label-training[i][labelIndex]) <= epsilon {
			keep[i] = false
		}
	}

	refs := make([]dataframe.Sample, 0, len(training))
	for i, flag := range keep {
		if flag {
			refs = append(refs, training[i])
		}
	}
	if len(refs) == 0 {
		return nil, core.New(core.EmptyTraining, "edited knn pruned every training sample")
	}

	return &knnModel{
		refs: refs, labelIndex: labelIndex, k: k, gamma: gamma,
		typeID: Edited,
		hp:     resolvedHyperparameters(hp, map[string]float64{"k": float64(k), "gamma": gamma, "epsilon": epsilon}),
	}, nil
}
