// Package config loads the pipeline's YAML-like configuration document
// into typed structures, per §6.2 of the training contract.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-tabpipe/tabpipe/core"
)

// Input describes the reader stage.
type Input struct {
	Address       string   `yaml:"address"`
	Format        string   `yaml:"format"`
	MissingValues []string `yaml:"missing_values"`
	Headers       bool     `yaml:"headers"`
}

// ScrubStep names a single-column scrubber invocation.
type ScrubStep struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
}

// TransformStep names a single-column transform invocation.
type TransformStep struct {
	Name       string             `yaml:"name"`
	Index      int                `yaml:"index"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// Model describes the model stage: its name, task, and fixed (non-tuned)
// hyperparameters.
type Model struct {
	Name       string             `yaml:"name"`
	Task       string             `yaml:"task"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// Partitioning describes the partitioner stage.
type Partitioning struct {
	Strategy   string             `yaml:"strategy"`
	Parameters map[string]float64 `yaml:"parameters"`
}

// Tunning describes the hyperparameter grid, keyed by hyperparameter
// name (document's own "tunning" spelling, kept verbatim).
type Tunning struct {
	Parameters map[string][]float64 `yaml:"parameters"`
}

// Training describes the training director's configuration block.
type Training struct {
	Model        Model        `yaml:"model"`
	Evaluation   string       `yaml:"evaluation"`
	Partitioning Partitioning `yaml:"partitioning"`
	Strategy     string       `yaml:"strategy"`
	LabelIndex   int          `yaml:"label_index"`
	Tunning      Tunning      `yaml:"tunning"`
}

// Document is the full configuration document.
type Document struct {
	Input     Input           `yaml:"input"`
	Parsing   []string        `yaml:"parsing"`
	Scrub     []ScrubStep     `yaml:"scrub"`
	Transform []TransformStep `yaml:"transform"`
	Training  Training        `yaml:"training"`
}

// Option adjusts a Document's defaults after it is decoded, via the same
// functional-option pattern core.ApplyOptions also gives the input reader.
type Option = core.Option[Document]

// WithDefaultHeaders sets Input.Headers to true, whatever the document
// said, including an explicit "headers: false". yaml.v3 cannot distinguish
// "absent" from "false" on a plain bool field, so this option is opt-in
// for callers that want the common-case default rather than the
// document's literal value.
func WithDefaultHeaders() Option {
	return func(d *Document) error {
		d.Input.Headers = true
		return nil
	}
}

// Load reads and decodes the document at path, then applies opts.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.Wrap(core.NotFound, fmt.Sprintf("configuration file %q", path), err)
		}
		return nil, core.Wrap(core.InvalidConfig, fmt.Sprintf("reading configuration file %q", path), err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.Wrap(core.InvalidConfig, fmt.Sprintf("parsing configuration file %q", path), err)
	}

	if err := core.ApplyOptions(&doc, opts...); err != nil {
		return nil, core.Wrap(core.InvalidConfig, "applying configuration defaults", err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func validate(d *Document) error {
	if d.Input.Address == "" {
		return core.New(core.InvalidConfig, "input.address is required")
	}
	if d.Input.Format != "csv" {
		return core.New(core.InvalidConfig, fmt.Sprintf("unsupported input.format %q", d.Input.Format))
	}
	if len(d.Parsing) == 0 {
		return core.New(core.InvalidConfig, "parsing must name at least one column parser")
	}
	if d.Training.Model.Name == "" {
		return core.New(core.InvalidConfig, "training.model.name is required")
	}
	if d.Training.Strategy == "" {
		return core.New(core.InvalidConfig, "training.strategy is required")
	}
	if d.Training.Partitioning.Strategy == "" {
		return core.New(core.InvalidConfig, "training.partitioning.strategy is required")
	}
	return nil
}
