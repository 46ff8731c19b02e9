// Package core provides the foundational types shared across the pipeline:
// the error taxonomy, the Numeric scalar, and a generic functional-option
// helper used by the configuration loader and the input reader.
package core

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind is the closed taxonomy of errors that can cross a pipeline stage
// boundary. No stage handles one of these locally by retry; every error
// is surfaced to the driver unwrapped.
type Kind int

const (
	// InvalidConfig marks a malformed or incomplete configuration document,
	// or a pipeline call with an unknown/missing tag or parameter.
	InvalidConfig Kind = iota
	// NotFound marks an unknown strategy, model, evaluator or partitioner name.
	NotFound
	// ShapeMismatch marks mismatched prediction/sample lengths.
	ShapeMismatch
	// EmptyInput marks an operation given zero rows where at least one is required.
	EmptyInput
	// EmptyTraining marks a model builder given an empty training slice.
	EmptyTraining
	// OutOfBounds marks a label or feature index outside the frame's column range.
	OutOfBounds
	// NoCandidates marks an empty hyperparameter grid or candidate list.
	NoCandidates
	// Numeric marks a parse or conversion failure on a numeric value.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case NotFound:
		return "NotFound"
	case ShapeMismatch:
		return "ShapeMismatch"
	case EmptyInput:
		return "EmptyInput"
	case EmptyTraining:
		return "EmptyTraining"
	case OutOfBounds:
		return "OutOfBounds"
	case NoCandidates:
		return "NoCandidates"
	case Numeric:
		return "Numeric"
	default:
		return "Unknown"
	}
}

// PipelineError is a Kind-tagged error. The kind is inspectable by callers
// that want to branch on error taxonomy (e.g. the CLI exit path) without
// string-matching the message.
type PipelineError struct {
	Kind    Kind
	Context string
	cause   error
}

func (e *PipelineError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *PipelineError) Unwrap() error { return e.cause }

// Wrap builds a PipelineError of the given kind, attaching context and an
// optional cause. When cause is non-nil it is wrapped with
// github.com/pkg/errors so the original stack trace survives for
// diagnostics, mirroring the Wrapper(ErrKind, msg) idiom seafan uses
// throughout its own data-loading code.
func Wrap(kind Kind, context string, cause error) error {
	if cause != nil {
		cause = pkgerrors.WithStack(cause)
	}
	return &PipelineError{Kind: kind, Context: context, cause: cause}
}

// New is Wrap with no underlying cause, for errors raised directly at the
// pipeline boundary (bad config, unknown name, ...).
func New(kind Kind, context string) error {
	return Wrap(kind, context, nil)
}

// KindOf unwraps err looking for a *PipelineError and returns its Kind.
// The second return is false if err (or anything it wraps) is not one of
// ours.
func KindOf(err error) (Kind, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
