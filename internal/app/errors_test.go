package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStageError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StageError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      NewStageError("compile", errors.New("boom")),
			expected: "compile: boom",
		},
		{
			name:     "without underlying error",
			err:      &StageError{Stage: "render"},
			expected: "render",
		},
		{
			name:     "nil receiver",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStageError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewStageError("view", inner)

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match the wrapped error")
	}

	var target *StageError
	if !errors.As(fmt.Errorf("cycle: %w", err), &target) {
		t.Error("expected errors.As to find StageError through wrapping")
	}
	if target.Stage != "view" {
		t.Errorf("expected stage 'view', got %q", target.Stage)
	}
}

func TestStageError_Is(t *testing.T) {
	err := NewStageError("compile", ErrAlreadyRunning)

	if !errors.Is(err, ErrAlreadyRunning) {
		t.Error("expected match on wrapped sentinel")
	}
	if errors.Is(err, ErrQuit) {
		t.Error("unexpected match on unrelated sentinel")
	}

	var nilErr *StageError
	if errors.Is(nilErr, ErrAlreadyRunning) {
		t.Error("nil receiver should not match")
	}
}

func TestStageError_MessageFormat(t *testing.T) {
	err := NewStageError("render", errors.New("document has no pages"))
	if !strings.Contains(err.Error(), "render") {
		t.Errorf("expected stage name in message, got %q", err.Error())
	}
}
