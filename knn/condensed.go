package knn

import (
	"math"

	"github.com/go-tabpipe/tabpipe/dataframe"
)

// CondensedBuilder grows its reference set in one forward pass over the
// training set: the first sample always seeds the set, and every later
// sample is added only if the current reference set mislabels it. Gamma
// defaults to 1 and epsilon defaults to core.EPS, per spec's
// condensed-trainer definition; both are overridable via the
// "gamma"/"epsilon" hyperparameters.
type CondensedBuilder struct{}

func (CondensedBuilder) Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error) {
	if err := validateLabelIndex(training, labelIndex); err != nil {
		return nil, err
	}
	k, err := parseK(hp)
	if err != nil {
		return nil, err
	}
	gamma, err := parseGamma(hp, 1)
	if err != nil {
		return nil, err
	}
	epsilon, err := parseEpsilon(hp)
	if err != nil {
		return nil, err
	}

	refs := []dataframe.Sample{training[0]}
	for _, s := range training[1:] {
		probe := &knnModel{refs: refs, labelIndex: labelIndex, k: k, gamma: gamma}
		label, err := probe.Label(s)
		if err != nil {
			return nil, err
		}
		if math.Abs(label-s[labelIndex]) > epsilon {
			refs = append(refs, s)
		}
	}

	return &knnModel{
		refs: refs, labelIndex: labelIndex, k: k, gamma: gamma,
		typeID: Condensed,
		hp:     resolvedHyperparameters(hp, map[string]float64{"k": float64(k), "gamma": gamma, "epsilon": epsilon}),
	}, nil
}
