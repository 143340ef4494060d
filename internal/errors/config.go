package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for an explicitly requested config file
// that does not exist.
func ConfigNotFound(configPath string) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the --config path, or drop the flag to use defaults.
  tbtui reads ./.tbtui.yaml automatically when it exists.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *TbtuiError {
	return &TbtuiError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the file for YAML syntax errors:
  1. Ensure proper indentation (use spaces, not tabs)
  2. Check for missing colons or quotes`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *TbtuiError {
	suggestion := fmt.Sprintf("Fix the %q setting (config file, TBTUI_ environment variable or flag)", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &TbtuiError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
