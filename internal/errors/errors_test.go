package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTbtuiError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TbtuiError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrHistory, "bad file"),
			expected: "bad file",
		},
		{
			name: "with cause",
			err: &TbtuiError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTbtuiError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrHistory, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrConfig, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrConfig) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestTbtuiError_Is(t *testing.T) {
	err := New(ErrHistory, "parse failed")

	if !errors.Is(err, ErrHistory) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !errors.Is(wrapped, ErrHistory) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestTbtuiError_Format(t *testing.T) {
	err := &TbtuiError{
		Kind:       ErrHistory,
		Message:    "parse failed",
		Suggestion: "Fix the header",
		Details: map[string]string{
			"path":   "runs/a_history.csv",
			"column": "epoch",
		},
	}

	formatted := err.Format()

	for _, want := range []string{
		"Error: parse failed",
		"  at runs/a_history.csv:epoch",
		"Suggestion: Fix the header",
		"column: epoch",
		"path:   runs/a_history.csv",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q in:\n%s", want, formatted)
		}
	}

	// Details are sorted by key
	if strings.Index(formatted, "column:") > strings.Index(formatted, "path:") {
		t.Error("Format() should list details in key order")
	}
}

func TestTbtuiError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestTbtuiError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrExport, "export error").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrConfig, "bad theme", "Use dark or light")

	if err.Suggestion != "Use dark or light" {
		t.Error("WithSuggestion should set Suggestion")
	}
}

func TestFormatError(t *testing.T) {
	plain := FormatError(errors.New("boom"))
	if plain != "Error: boom\n" {
		t.Errorf("FormatError(plain) = %q", plain)
	}

	wrapped := fmt.Errorf("startup: %w", NoHistoryFiles(".", "_history.csv"))
	got := FormatError(wrapped)
	if !strings.Contains(got, "Suggestion") {
		t.Errorf("FormatError should use the full report for TbtuiError, got %q", got)
	}
}

func TestTbtuiError_FormatWithoutColumn(t *testing.T) {
	err := New(ErrExport, "write failed").WithDetails("file", "out.html")
	formatted := err.Format()

	if strings.Contains(formatted, "  at ") {
		t.Errorf("Format() should only print a location for path and column:\n%s", formatted)
	}
	if !strings.Contains(formatted, "file: out.html") {
		t.Errorf("Format() missing detail:\n%s", formatted)
	}
	if strings.Contains(formatted, "Suggestion") {
		t.Errorf("Format() should omit an empty suggestion:\n%s", formatted)
	}
}
