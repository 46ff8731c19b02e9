// Package evaluate scores a model's predictions against the true labels,
// per spec's closed evaluator set.
package evaluate

import (
	"fmt"
	"math"

	"github.com/go-tabpipe/tabpipe/core"
)

// Kind names an evaluator.
type Kind string

const (
	ClassificationScore Kind = "classification-score"
	MSE                 Kind = "mse"
)

// Score dispatches to the evaluator named by kind. It returns
// core.ShapeMismatch if predictions and labels have different lengths,
// core.EmptyInput if both are empty, and core.NotFound for an
// unrecognized kind.
func Score(kind Kind, predictions, labels []core.Numeric) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, core.New(core.ShapeMismatch, fmt.Sprintf("%d predictions vs %d labels", len(predictions), len(labels)))
	}
	if len(predictions) == 0 {
		return 0, core.New(core.EmptyInput, "no predictions to score")
	}

	switch kind {
	case ClassificationScore:
		return classificationScore(predictions, labels), nil
	case MSE:
		return mse(predictions, labels), nil
	default:
		return 0, core.New(core.NotFound, fmt.Sprintf("unknown evaluator kind %q", kind))
	}
}

// classificationScore is the fraction of predictions whose distance from
// the true label exceeds core.EPS — an error rate, not an accuracy: lower
// is better, matching the kx2-folds director's "best = lowest |metric|"
// selection rule regardless of which evaluator is configured.
func classificationScore(predictions, labels []core.Numeric) float64 {
	wrong := 0
	for i := range predictions {
		if math.Abs(predictions[i]-labels[i]) > core.EPS {
			wrong++
		}
	}
	return float64(wrong) / float64(len(predictions))
}

func mse(predictions, labels []core.Numeric) float64 {
	sum := 0.0
	for i := range predictions {
		d := predictions[i] - labels[i]
		sum += d * d
	}
	return sum / float64(len(predictions))
}
