package director

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/crossval"
	"github.com/go-tabpipe/tabpipe/dataframe"
	"github.com/go-tabpipe/tabpipe/evaluate"
	"github.com/go-tabpipe/tabpipe/knn"
)

func twoClusterFrame(t *testing.T, repeat int) *dataframe.Frame[float64] {
	t.Helper()
	var x, y []float64
	for r := 0; r < repeat; r++ {
		x = append(x, 0, 0, 0, 0, 0, 10, 10, 10, 10, 10)
		y = append(y, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1)
	}
	frame, err := dataframe.NewFrame(
		dataframe.NewColumn("x", x),
		dataframe.NewColumn("y", y),
	)
	require.NoError(t, err)
	return frame
}

func TestRunSimpleSeparatedClustersZeroError(t *testing.T) {
	frame := twoClusterFrame(t, 1)
	cfg := Config{
		Strategy:            Simple,
		Partitioner:         crossval.StratifiedKFold,
		NumFolds:            5,
		Evaluator:           evaluate.ClassificationScore,
		Model:               knn.Simple,
		Task:                Classification,
		LabelIndex:          1,
		BaseHyperparameters: map[string]float64{"k": 1},
	}

	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(1))
	last, err := Run(cfg, frame, rng, &buf)
	require.NoError(t, err)
	assert.InDelta(t, 0, last, 1e-9)
}

func TestRunKx2FoldsReturnsErrorInExpectedRange(t *testing.T) {
	frame := twoClusterFrame(t, 20)
	cfg := Config{
		Strategy:            Kx2Folds,
		Partitioner:         crossval.StratifiedKFold,
		Evaluator:           evaluate.ClassificationScore,
		Model:               knn.Simple,
		Task:                Classification,
		LabelIndex:          1,
		BaseHyperparameters: map[string]float64{},
		TuningGrid:          map[string][]core.Numeric{"k": {1, 3, 5}},
		TuningKeyOrder:      []string{"k"},
	}

	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(1))
	avg, err := Run(cfg, frame, rng, &buf)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, avg, 0.0)
	assert.LessOrEqual(t, avg, 0.2)
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	frame := twoClusterFrame(t, 1)
	cfg := Config{Strategy: "bogus", LabelIndex: 1}
	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(1))
	_, err := Run(cfg, frame, rng, &buf)
	assert.Error(t, err)
}

func TestRunRejectsOutOfBoundsLabelIndex(t *testing.T) {
	frame := twoClusterFrame(t, 1)
	cfg := Config{Strategy: Simple, LabelIndex: 5}
	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(1))
	_, err := Run(cfg, frame, rng, &buf)
	assert.Error(t, err)
}
