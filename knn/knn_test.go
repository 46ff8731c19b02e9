package knn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tabpipe/tabpipe/dataframe"
)

func clusterTraining() []dataframe.Sample {
	return []dataframe.Sample{
		{0, 0, 0},
		{0.1, 0.1, 0},
		{0.2, 0.0, 0},
		{5, 5, 1},
		{5.1, 5.1, 1},
		{5.2, 5.0, 1},
	}
}

func TestSimpleBuilderClassifiesNearestCluster(t *testing.T) {
	builder := SimpleBuilder{}
	model, err := builder.Build(clusterTraining(), 2, Hyperparameters{"k": "3"})
	require.NoError(t, err)

	label, err := model.Label(dataframe.Sample{0.05, 0.05, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, label, 1e-9)

	label, err = model.Label(dataframe.Sample{5.05, 5.05, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, label, 1e-9)
}

func TestCondensedBuilderShrinksReferenceSet(t *testing.T) {
	builder := CondensedBuilder{}
	model, err := builder.Build(clusterTraining(), 2, Hyperparameters{"k": "1"})
	require.NoError(t, err)
	m := model.(*knnModel)
	assert.LessOrEqual(t, len(m.refs), len(clusterTraining()))
	assert.GreaterOrEqual(t, len(m.refs), 1)
}

func TestEditedBuilderReferenceSetNoLargerThanTraining(t *testing.T) {
	builder := EditedBuilder{}
	model, err := builder.Build(clusterTraining(), 2, Hyperparameters{"k": "1"})
	require.NoError(t, err)
	m := model.(*knnModel)
	assert.LessOrEqual(t, len(m.refs), len(clusterTraining()))
}

// twoClassTenRows is the literal end-to-end scenario frame: two
// five-point clusters at (0,0) and (10,1), label in column 1.
func twoClassTenRows() []dataframe.Sample {
	return []dataframe.Sample{
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
		{10, 1}, {10, 1}, {10, 1}, {10, 1}, {10, 1},
	}
}

func TestCondensedBuilderMatchesLiteralScenario(t *testing.T) {
	builder := CondensedBuilder{}
	model, err := builder.Build(twoClassTenRows(), 1, Hyperparameters{"k": "1", "epsilon": "1e-8"})
	require.NoError(t, err)
	m := model.(*knnModel)
	assert.Len(t, m.refs, 2)
}

func TestEditedBuilderMatchesLiteralScenario(t *testing.T) {
	builder := EditedBuilder{}
	model, err := builder.Build(twoClassTenRows(), 1, Hyperparameters{"k": "1"})
	require.NoError(t, err)
	m := model.(*knnModel)
	assert.Len(t, m.refs, 10)
}

func TestNullClassifierReturnsMode(t *testing.T) {
	builder := NullClassifierBuilder{}
	training := []dataframe.Sample{{0}, {0}, {1}}
	model, err := builder.Build(training, 0, nil)
	require.NoError(t, err)
	label, err := model.Label(dataframe.Sample{99})
	require.NoError(t, err)
	assert.InDelta(t, 0, label, 1e-9)
}

func TestNullRegressionReturnsMean(t *testing.T) {
	builder := NullRegressionBuilder{}
	training := []dataframe.Sample{{1}, {2}, {3}}
	model, err := builder.Build(training, 0, nil)
	require.NoError(t, err)
	pred, err := model.Predict(dataframe.Sample{99})
	require.NoError(t, err)
	assert.InDelta(t, 2, pred, 1e-9)
}

func TestBuilderRejectsUnknownName(t *testing.T) {
	_, err := Builder("bogus")
	assert.Error(t, err)
}

func TestSimpleBuilderRejectsMissingK(t *testing.T) {
	builder := SimpleBuilder{}
	_, err := builder.Build(clusterTraining(), 2, Hyperparameters{})
	assert.Error(t, err)
}
