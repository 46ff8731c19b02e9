package knn

import (
	"gonum.org/v1/gonum/stat"

	"github.com/go-tabpipe/tabpipe/dataframe"
)

// constantModel ignores its input sample and always returns the same
// value, for both Label and Predict.
type constantModel struct {
	value  float64
	typeID Name
	hp     Hyperparameters
}

func (m *constantModel) Label(dataframe.Sample) (float64, error)   { return m.value, nil }
func (m *constantModel) Predict(dataframe.Sample) (float64, error) { return m.value, nil }
func (m *constantModel) Hyperparameters() Hyperparameters          { return m.hp }
func (m *constantModel) TypeID() Name                              { return m.typeID }

// NullClassifierBuilder is the classification baseline: the mode of the
// training labels, regardless of input.
type NullClassifierBuilder struct{}

func (NullClassifierBuilder) Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error) {
	if err := validateLabelIndex(training, labelIndex); err != nil {
		return nil, err
	}
	ns := make([]neighbor, len(training))
	for i := range training {
		ns[i] = neighbor{index: i, dist: 0}
	}
	return &constantModel{value: modeLabel(training, labelIndex, ns), typeID: NullClassifier, hp: hp}, nil
}

// NullRegressionBuilder is the regression baseline: the mean of the
// training labels, regardless of input.
type NullRegressionBuilder struct{}

func (NullRegressionBuilder) Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error) {
	if err := validateLabelIndex(training, labelIndex); err != nil {
		return nil, err
	}
	return &constantModel{value: stat.Mean(labelsOf(training, labelIndex), nil), typeID: NullRegression, hp: hp}, nil
}
