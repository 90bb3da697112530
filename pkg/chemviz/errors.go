package chemviz

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/align"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/output"
)

// ErrMissingInput indicates a required input file or directory does not exist.
var ErrMissingInput = errors.New("required input not found")

// MissingInputError names the required input that is absent.
type MissingInputError struct {
	Path string
	// Kind describes the input, e.g. "file" or "image directory".
	Kind string
}

func (e *MissingInputError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "file"
	}
	return fmt.Sprintf("required %s not found: %s", kind, e.Path)
}

// Is reports ErrMissingInput as matching.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// StageError represents an error in one pipeline stage.
type StageError struct {
	Artifact string
	Stage    string // "load", "resolve", "project", "align", "emit"
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Artifact, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(artifact, stage string, err error) *StageError {
	return &StageError{
		Artifact: artifact,
		Stage:    stage,
		Err:      err,
	}
}

// Errors raised by the pipeline stages.
type (
	SerializationError = output.SerializationError
	AlignmentError     = align.AlignmentError
)
