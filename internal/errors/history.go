package errors

import (
	"fmt"
)

// History-related error constructors.

// NoHistoryFiles creates an error when discovery finds nothing to plot.
func NoHistoryFiles(root, suffix string) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("no history files matching *%s found under %s", suffix, root),
		Details: map[string]string{
			"path":   root,
			"suffix": suffix,
		},
		Suggestion: fmt.Sprintf(`Point tbtui at a directory containing <run>%s files:
  tbtui --path ./experiments`, suffix),
	}
}

// HistoryReadError creates an error for a history file that could not be read.
func HistoryReadError(path string, cause error) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrHistory,
		Message: fmt.Sprintf("failed to read history file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
}

// HistoryParseError creates an error for a malformed CSV file.
func HistoryParseError(path string, cause error) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrHistory,
		Message: fmt.Sprintf("failed to parse history file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `History files must be comma-delimited with a header row,
  and every row must have the same number of fields.`,
	}
}

// MissingEpochColumn creates an error for a history file without the epoch column.
func MissingEpochColumn(path, column string) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrHistory,
		Message: fmt.Sprintf("history file has no %q column: %s", column, path),
		Details: map[string]string{
			"path":   path,
			"column": column,
		},
		Suggestion: fmt.Sprintf("Add an integer %q column, or set epoch_column in .tbtui.yaml.", column),
	}
}

// InvalidColumn creates an error for a column whose values have the wrong type.
func InvalidColumn(path, column, want string, cause error) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrHistory,
		Message: fmt.Sprintf("column %q must be %s: %s", column, want, path),
		Cause:   cause,
		Details: map[string]string{
			"path":   path,
			"column": column,
		},
	}
}

// NoMetricColumns creates an error for a history file with only an epoch column.
func NoMetricColumns(path string) *TbtuiError {
	return &TbtuiError{
		Kind:       ErrHistory,
		Message:    fmt.Sprintf("history file has no metric columns: %s", path),
		Details:    map[string]string{"path": path},
		Suggestion: "Each history file needs at least one numeric column besides the epoch.",
	}
}
