// Command pipeline runs the five-stage configuration-driven training
// pipeline end to end: input, parsing, scrubbing, transform, training.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-tabpipe/tabpipe/config"
	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/crossval"
	"github.com/go-tabpipe/tabpipe/dataframe"
	"github.com/go-tabpipe/tabpipe/director"
	"github.com/go-tabpipe/tabpipe/evaluate"
	"github.com/go-tabpipe/tabpipe/io/input"
	"github.com/go-tabpipe/tabpipe/knn"
	"github.com/go-tabpipe/tabpipe/parse"
	"github.com/go-tabpipe/tabpipe/scrub"
	"github.com/go-tabpipe/tabpipe/transform"
)

func main() {
	root := &cobra.Command{
		Use:           "pipeline <config-file>",
		Short:         "Run a configuration-driven k-NN training pipeline",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	if err := root.Execute(); err != nil {
		kind, ok := core.KindOf(err)
		if ok {
			fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

func run(configPath string) error {
	doc, err := config.Load(configPath, config.WithDefaultHeaders())
	if err != nil {
		return err
	}

	raw, err := input.Read(doc.Input.Address,
		input.WithHeader(doc.Input.Headers),
		input.WithNAValues(doc.Input.MissingValues))
	if err != nil {
		return err
	}

	parsed, err := parseColumns(raw, doc.Parsing)
	if err != nil {
		return err
	}

	for _, step := range doc.Scrub {
		col, err := parsed.ColumnAt(step.Index)
		if err != nil {
			return err
		}
		filled, err := scrub.Apply(scrub.Kind(step.Name), col)
		if err != nil {
			return err
		}
		parsed, err = parsed.WithColumn(filled)
		if err != nil {
			return err
		}
	}

	dense, err := scrub.Amputate(parsed)
	if err != nil {
		return err
	}

	for _, step := range doc.Transform {
		col, err := dense.ColumnAt(step.Index)
		if err != nil {
			return err
		}
		transformed, err := transform.Apply(transform.Kind(step.Name), col, step.Parameters)
		if err != nil {
			return err
		}
		dense, err = dense.WithColumn(transformed)
		if err != nil {
			return err
		}
	}

	cfg := director.Config{
		Strategy:            director.Strategy(doc.Training.Strategy),
		Partitioner:         crossval.Kind(doc.Training.Partitioning.Strategy),
		NumFolds:            int(doc.Training.Partitioning.Parameters["num_folds"]),
		Evaluator:           evaluate.Kind(doc.Training.Evaluation),
		Model:               knn.Name(doc.Training.Model.Name),
		Task:                director.Task(doc.Training.Model.Task),
		LabelIndex:          doc.Training.LabelIndex,
		BaseHyperparameters: doc.Training.Model.Parameters,
		TuningGrid:          doc.Training.Tunning.Parameters,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := director.Run(cfg, dense, rng, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("final generalization error: %.6f\n", result)
	return nil
}

func parseColumns(raw *dataframe.Frame[*string], kinds []string) (*dataframe.Frame[*float64], error) {
	if len(kinds) != raw.NumCols() {
		return nil, core.New(core.ShapeMismatch, fmt.Sprintf("parsing names %d columns but input has %d", len(kinds), raw.NumCols()))
	}

	cols := make([]*dataframe.Column[*float64], raw.NumCols())
	for i, kind := range kinds {
		col, err := raw.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		parsedCol, err := parse.Apply(parse.Kind(kind), col)
		if err != nil {
			return nil, err
		}
		cols[i] = parsedCol
	}
	return dataframe.NewFrame(cols...)
}
