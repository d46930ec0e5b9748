package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the session should end normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")
)

// StageError represents a failure in one stage of a compile-preview cycle.
// Stage failures are reported to the user; the session continues.
type StageError struct {
	Stage string // Stage name (e.g., "compile", "render", "view")
	Err   error  // Underlying error
}

// NewStageError creates a new StageError.
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return e.Stage
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for StageError.
// Matches both the wrapper itself and the wrapped error.
func (e *StageError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*StageError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
