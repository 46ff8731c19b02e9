package knn

import (
	"fmt"

	"github.com/go-tabpipe/tabpipe/core"
)

// Name identifies one of the closed set of model builders.
type Name string

const (
	Simple         Name = "knn-simple"
	Condensed      Name = "knn-condensed"
	Edited         Name = "knn-edited"
	NullClassifier Name = "null-classifier"
	NullRegression Name = "null-regression"
)

// Builder resolves name to its ModelBuilder. This is the closed dispatcher
// replacing a string-keyed trait-object registry: the model family is an
// exhaustive, compile-time-known set.
func Builder(name Name) (ModelBuilder, error) {
	switch name {
	case Simple:
		return SimpleBuilder{}, nil
	case Condensed:
		return CondensedBuilder{}, nil
	case Edited:
		return EditedBuilder{}, nil
	case NullClassifier:
		return NullClassifierBuilder{}, nil
	case NullRegression:
		return NullRegressionBuilder{}, nil
	default:
		return nil, core.New(core.NotFound, fmt.Sprintf("unknown model name %q", name))
	}
}
