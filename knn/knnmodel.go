package knn

import (
	"fmt"
	"strconv"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// knnModel is the shared representation behind the Simple, Condensed and
// Edited trainers: a reference set, the label column's position, the
// neighborhood size and the kernel bandwidth. The three trainers differ
// only in how they build refs and gamma; Label/Predict are identical.
type knnModel struct {
	refs       []dataframe.Sample
	labelIndex int
	k          int
	gamma      float64
	typeID     Name
	hp         Hyperparameters
}

func (m *knnModel) Label(sample dataframe.Sample) (float64, error) {
	if len(m.refs) == 0 {
		return 0, core.New(core.EmptyTraining, "knn model has no reference samples")
	}
	ns := nearest(m.refs, sample, m.labelIndex, m.k)
	return modeLabel(m.refs, m.labelIndex, ns), nil
}

func (m *knnModel) Predict(sample dataframe.Sample) (float64, error) {
	if len(m.refs) == 0 {
		return 0, core.New(core.EmptyTraining, "knn model has no reference samples")
	}
	ns := nearest(m.refs, sample, m.labelIndex, m.k)
	return kernelMean(m.refs, m.labelIndex, m.gamma, ns), nil
}

func (m *knnModel) Hyperparameters() Hyperparameters { return m.hp }
func (m *knnModel) TypeID() Name                     { return m.typeID }

// parseK reads the "k" hyperparameter as a positive int, per §4.3's
// string-valued hyperparameter contract.
func parseK(hp Hyperparameters) (int, error) {
	raw, ok := hp["k"]
	if !ok {
		return 0, core.New(core.InvalidConfig, `knn model requires a "k" hyperparameter`)
	}
	k, err := strconv.Atoi(raw)
	if err != nil || k < 1 {
		return 0, core.Wrap(core.InvalidConfig, fmt.Sprintf(`invalid "k" hyperparameter %q`, raw), err)
	}
	return k, nil
}

// parseGamma reads the "gamma" hyperparameter, falling back to def — the
// trainer's own documented default — when it is absent.
func parseGamma(hp Hyperparameters, def float64) (float64, error) {
	raw, ok := hp["gamma"]
	if !ok {
		return def, nil
	}
	gamma, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.Wrap(core.InvalidConfig, fmt.Sprintf(`invalid "gamma" hyperparameter %q`, raw), err)
	}
	return gamma, nil
}

// parseEpsilon reads the "epsilon" hyperparameter, falling back to
// core.EPS — the numeric-identity tolerance — when it is absent.
func parseEpsilon(hp Hyperparameters) (float64, error) {
	raw, ok := hp["epsilon"]
	if !ok {
		return core.EPS, nil
	}
	epsilon, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.Wrap(core.InvalidConfig, fmt.Sprintf(`invalid "epsilon" hyperparameter %q`, raw), err)
	}
	return epsilon, nil
}

// resolvedHyperparameters copies hp and overlays overrides, rendering
// each override to its string form, so a built model's Hyperparameters()
// reports the values it actually trained with rather than just the
// caller-supplied map.
func resolvedHyperparameters(hp Hyperparameters, overrides map[string]float64) Hyperparameters {
	out := make(Hyperparameters, len(hp)+len(overrides))
	for key, v := range hp {
		out[key] = v
	}
	for key, v := range overrides {
		out[key] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

func validateLabelIndex(training []dataframe.Sample, labelIndex int) error {
	if len(training) == 0 {
		return core.New(core.EmptyTraining, "training set is empty")
	}
	if labelIndex < 0 || labelIndex >= len(training[0]) {
		return core.New(core.OutOfBounds, "label index out of range")
	}
	return nil
}

func labelsOf(training []dataframe.Sample, labelIndex int) []float64 {
	labels := make([]float64, len(training))
	for i, s := range training {
		labels[i] = s[labelIndex]
	}
	return labels
}
