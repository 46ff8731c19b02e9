// Package director implements THE CORE of the pipeline: the training
// director that orchestrates partitioning, model building and evaluation
// into the "simple" baseline driver and the "kx2-folds" tuning-and-
// generalization-estimation driver.
package director

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/crossval"
	"github.com/go-tabpipe/tabpipe/dataframe"
	"github.com/go-tabpipe/tabpipe/evaluate"
	"github.com/go-tabpipe/tabpipe/knn"
	"github.com/go-tabpipe/tabpipe/tuning"
)

// Strategy names a training-director driver.
type Strategy string

const (
	Simple   Strategy = "simple"
	Kx2Folds Strategy = "kx2-folds"
)

// Task names the kind of output a model is scored on.
type Task string

const (
	Classification Task = "classification"
	Regression     Task = "regression"
)

// Config is everything the director needs beyond the numeric frame
// itself, drawn from the configuration document's training block.
type Config struct {
	Strategy            Strategy
	Partitioner         crossval.Kind
	NumFolds            int
	Evaluator           evaluate.Kind
	Model               knn.Name
	Task                Task
	LabelIndex          int
	BaseHyperparameters map[string]float64
	TuningGrid          map[string][]core.Numeric
	TuningKeyOrder      []string
}

// Run dispatches to the configured strategy and returns the reported
// generalization error. Progress lines are written to w, per spec §7's
// line-oriented report contract.
func Run(cfg Config, frame *dataframe.Frame[float64], rng *rand.Rand, w io.Writer) (float64, error) {
	if cfg.LabelIndex < 0 || cfg.LabelIndex >= frame.NumCols() {
		return 0, core.New(core.OutOfBounds, "label index out of range")
	}

	samples, err := dataframe.AllRows(frame)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, core.New(core.EmptyInput, "frame has no rows to train on")
	}

	switch cfg.Strategy {
	case Simple:
		return runSimple(cfg, samples, rng, w)
	case Kx2Folds:
		return runKx2Folds(cfg, samples, rng, w)
	default:
		return 0, core.New(core.InvalidConfig, fmt.Sprintf("unknown training strategy %q", cfg.Strategy))
	}
}

func runSimple(cfg Config, samples []dataframe.Sample, rng *rand.Rand, w io.Writer) (float64, error) {
	labels := extractLabels(samples, cfg.LabelIndex)
	folds, err := crossval.Partition(cfg.Partitioner, len(samples), cfg.NumFolds, labels, rng)
	if err != nil {
		return 0, err
	}

	builder, err := knn.Builder(cfg.Model)
	if err != nil {
		return 0, err
	}
	hp := toHyperparameters(cfg.BaseHyperparameters, nil)

	var lastVal float64
	for i, fold := range folds {
		train := sliceAt(samples, fold.Train)
		val := sliceAt(samples, fold.Val)

		model, err := builder.Build(train, cfg.LabelIndex, hp)
		if err != nil {
			return 0, err
		}

		trainScore, err := scoreSet(cfg, model, train)
		if err != nil {
			return 0, err
		}
		valScore, err := scoreSet(cfg, model, val)
		if err != nil {
			return 0, err
		}

		fmt.Fprintf(w, "fold %d: size=%d train=%.6f val=%.6f\n", i, len(fold.Val), trainScore, valScore)
		lastVal = valScore
	}
	return lastVal, nil
}

// kx2Candidate is one tuning-round observation: a hyperparameter map and
// its metric on the holdout set.
type kx2Candidate struct {
	hp     knn.Hyperparameters
	metric float64
}

func runKx2Folds(cfg Config, samples []dataframe.Sample, rng *rand.Rand, w io.Writer) (float64, error) {
	builder, err := knn.Builder(cfg.Model)
	if err != nil {
		return 0, err
	}

	allLabels := extractLabels(samples, cfg.LabelIndex)
	holdoutFolds, err := crossval.StratifiedSplit(allLabels, 5, rng)
	if err != nil {
		return 0, err
	}
	pick := holdoutFolds[rng.Intn(len(holdoutFolds))]
	holdout := sliceAt(samples, pick.Val)
	working := sliceAt(samples, pick.Train)

	grid, err := tuning.Grid(cfg.TuningGrid, cfg.TuningKeyOrder)
	if err != nil {
		return 0, err
	}

	workingLabels := extractLabels(working, cfg.LabelIndex)

	var candidates []kx2Candidate
	for round := 0; round < 5; round++ {
		pairFolds, err := crossval.StratifiedSplit(workingLabels, 2, rng)
		if err != nil {
			return 0, err
		}
		firstSet := sliceAt(working, pairFolds[0].Train)
		secondSet := sliceAt(working, pairFolds[0].Val)

		h1 := grid[rng.Intn(len(grid))]
		h2 := grid[rng.Intn(len(grid))]
		hp1 := toHyperparameters(cfg.BaseHyperparameters, h1)
		hp2 := toHyperparameters(cfg.BaseHyperparameters, h2)

		model1, err := builder.Build(firstSet, cfg.LabelIndex, hp1)
		if err != nil {
			return 0, err
		}
		model2, err := builder.Build(secondSet, cfg.LabelIndex, hp2)
		if err != nil {
			return 0, err
		}

		metric1, err := scoreSet(cfg, model1, holdout)
		if err != nil {
			return 0, err
		}
		metric2, err := scoreSet(cfg, model2, holdout)
		if err != nil {
			return 0, err
		}

		fmt.Fprintf(w, "tuning round %d: candidate1=%.6f candidate2=%.6f\n", round, metric1, metric2)
		candidates = append(candidates, kx2Candidate{hp: hp1, metric: metric1})
		candidates = append(candidates, kx2Candidate{hp: hp2, metric: metric2})
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c.metric) < math.Abs(best.metric) {
			best = c
		}
	}

	var metrics []float64
	for round := 0; round < 5; round++ {
		genFolds, err := crossval.StratifiedSplit(workingLabels, 2, rng)
		if err != nil {
			return 0, err
		}
		for _, fold := range genFolds {
			train := sliceAt(working, fold.Train)
			test := sliceAt(working, fold.Val)
			model, err := builder.Build(train, cfg.LabelIndex, best.hp)
			if err != nil {
				return 0, err
			}
			metric, err := scoreSet(cfg, model, test)
			if err != nil {
				return 0, err
			}
			metrics = append(metrics, metric)
		}
	}

	sum := 0.0
	for _, m := range metrics {
		sum += m
	}
	avg := sum / float64(len(metrics))
	fmt.Fprintf(w, "generalization error: %.6f\n", avg)
	return avg, nil
}

func scoreSet(cfg Config, model knn.Model, samples []dataframe.Sample) (float64, error) {
	preds := make([]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		var v float64
		var err error
		if cfg.Task == Classification {
			v, err = model.Label(s)
		} else {
			v, err = model.Predict(s)
		}
		if err != nil {
			return 0, err
		}
		preds[i] = v
		labels[i] = s[cfg.LabelIndex]
	}
	return evaluate.Score(cfg.Evaluator, preds, labels)
}

func extractLabels(samples []dataframe.Sample, labelIndex int) []float64 {
	labels := make([]float64, len(samples))
	for i, s := range samples {
		labels[i] = s[labelIndex]
	}
	return labels
}

func sliceAt(samples []dataframe.Sample, indices []int) []dataframe.Sample {
	out := make([]dataframe.Sample, len(indices))
	for i, idx := range indices {
		out[i] = samples[idx]
	}
	return out
}

// toHyperparameters merges the fixed, configured hyperparameters with a
// tuning candidate's draw (which wins on key collision), rendering every
// value to its string form for the model builders' string-valued
// contract.
func toHyperparameters(base map[string]float64, candidate tuning.Candidate) knn.Hyperparameters {
	hp := make(knn.Hyperparameters, len(base)+len(candidate))
	for k, v := range base {
		hp[k] = formatNumeric(v)
	}
	for k, v := range candidate {
		hp[k] = formatNumeric(v)
	}
	return hp
}

func formatNumeric(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
