// Package errors defines the error report tbtui prints when it cannot start
// or write output. Each error names the file and column at fault and, where
// one exists, the flag or edit that fixes it.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrConfig   = errors.New("configuration error")
	ErrHistory  = errors.New("history error")
	ErrNotFound = errors.New("not found")
	ErrExport   = errors.New("export error")
)

// TbtuiError is a kinded error with optional remedy and context.
type TbtuiError struct {
	Kind    error
	Message string
	// Suggestion is printed after the details, e.g. a corrected command line.
	Suggestion string
	Cause      error
	// Details are key/value context such as "path" or "column".
	Details map[string]string
}

func (e *TbtuiError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap yields the cause, or the kind when there is none.
func (e *TbtuiError) Unwrap() error {
	if e.Cause == nil {
		return e.Kind
	}
	return e.Cause
}

func (e *TbtuiError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format renders the multi-line report: the error line, the details with
// their keys aligned and sorted, then the suggestion.
func (e *TbtuiError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", e.Error())

	if loc := e.location(); loc != "" {
		fmt.Fprintf(&sb, "  at %s\n", loc)
	}

	if len(e.Details) > 0 {
		keys := slices.Sorted(maps.Keys(e.Details))
		width := 0
		for _, k := range keys {
			width = max(width, len(k))
		}
		sb.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %-*s %s\n", width+1, k+":", e.Details[k])
		}
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", e.Suggestion)
	}
	return sb.String()
}

// location joins the path and column details as path:column.
func (e *TbtuiError) location() string {
	path, col := e.Details["path"], e.Details["column"]
	if path == "" || col == "" {
		return ""
	}
	return path + ":" + col
}

// WithDetails sets one detail and returns e for chaining.
func (e *TbtuiError) WithDetails(key, value string) *TbtuiError {
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	e.Details[key] = value
	return e
}

func (e *TbtuiError) WithCause(cause error) *TbtuiError {
	e.Cause = cause
	return e
}

func New(kind error, message string) *TbtuiError {
	return &TbtuiError{Kind: kind, Message: message}
}

// Wrap attaches kind and message to err.
func Wrap(err error, kind error, message string) *TbtuiError {
	return &TbtuiError{Kind: kind, Message: message, Cause: err}
}

func WithSuggestion(kind error, message, suggestion string) *TbtuiError {
	return &TbtuiError{Kind: kind, Message: message, Suggestion: suggestion}
}

// FormatError renders err for the terminal. A TbtuiError anywhere in the
// chain gets the full report; anything else gets a single "Error:" line.
func FormatError(err error) string {
	var te *TbtuiError
	if errors.As(err, &te) {
		return te.Format()
	}
	return fmt.Sprintf("Error: %v\n", err)
}
