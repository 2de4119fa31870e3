// internal/runner/errors.go
package runner

import (
	"errors"
	"fmt"
)

// Common pipeline errors
var (
	ErrNoTables = errors.New("no tables on page")
)

// ErrorCode represents a specific failure condition in the pipeline
type ErrorCode string

const (
	ErrCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrCodeNetwork      ErrorCode = "NETWORK_ERROR"
	ErrCodeParse        ErrorCode = "PARSE_ERROR"
)

// PipelineError wraps a pipeline failure with its classification.
// Source names the page address or input path the failure belongs to.
// Row-level failures are logged and skipped, never escalated to abort
// the batch.
type PipelineError struct {
	Code       ErrorCode
	Source     string
	Underlying error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Source, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Source)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *PipelineError) Is(target error) bool {
	if t, ok := target.(*PipelineError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}
