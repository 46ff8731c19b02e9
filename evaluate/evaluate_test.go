package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationScoreIsErrorRate(t *testing.T) {
	predictions := []float64{0, 1, 1, 0}
	labels := []float64{0, 1, 0, 0}
	score, err := Score(ClassificationScore, predictions, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, score, 1e-9)
}

func TestMSE(t *testing.T) {
	predictions := []float64{1, 2, 3}
	labels := []float64{1, 2, 5}
	score, err := Score(MSE, predictions, labels)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, score, 1e-9)
}

func TestScoreRejectsShapeMismatch(t *testing.T) {
	_, err := Score(MSE, []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestScoreRejectsUnknownKind(t *testing.T) {
	_, err := Score("bogus", []float64{1}, []float64{1})
	assert.Error(t, err)
}
