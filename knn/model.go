// Package knn implements the pipeline's model family: a handful of
// instance-based k-nearest-neighbor trainers plus a constant-prediction
// baseline, all behind one Model/ModelBuilder interface pair.
package knn

import "github.com/go-tabpipe/tabpipe/dataframe"

// Hyperparameters is a string-valued map, deliberately untyped: the
// director and tuner pass hyperparameters through without knowing any
// model's internal parameter set. The director renders the configuration
// document's numeric model.parameters block and each tuning draw into
// this string form before handing them to a builder.
type Hyperparameters map[string]string

// Model is a trained instance, ready to classify or predict a new sample.
type Model interface {
	// Label returns the mode-vote class label of sample's nearest
	// neighbors, for classification metrics.
	Label(sample dataframe.Sample) (float64, error)
	// Predict returns the kernel-weighted mean of sample's nearest
	// neighbors' labels, for regression metrics.
	Predict(sample dataframe.Sample) (float64, error)
	// Hyperparameters returns the model's actual, resolved hyperparameters
	// (including any values a tuning draw or a configured override
	// supplied in place of a trainer's own default).
	Hyperparameters() Hyperparameters
	// TypeID names the builder that produced this model.
	TypeID() Name
}

// ModelBuilder fits a Model from a training set. labelIndex names which
// column of each training Sample holds the label; every other column is
// a feature.
type ModelBuilder interface {
	Build(training []dataframe.Sample, labelIndex int, hp Hyperparameters) (Model, error)
}
