package knn

import (
	"gonum.org/v1/gonum/stat"

	"github.com/go-tabpipe/tabpipe/dataframe"
)

// SimpleBuilder trains a plain k-NN model: the reference set is the whole
// training set, unmodified, and the kernel bandwidth gamma is the sample
// standard deviation of the training labels.
type SimpleBuilder struct{}

func (SimpleBuilder) Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error) {
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
	return &knnModel{
		refs: training, labelIndex: labelIndex, k: k, gamma: gamma,
		typeID: Simple,
		hp:     resolvedHyperparameters(hp, map[string]float64{"k": float64(k), "gamma": gamma}),
	}, nil
}
