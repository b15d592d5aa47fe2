package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdstylecheck/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "format").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(field string, value any, msg string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: msg})
}

// Validate checks the final configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Format.IsValid() {
		result.addError("format", cfg.Format,
			fmt.Sprintf("invalid value %q (must be one of: text, json)", cfg.Format))
	}

	if !cfg.Color.IsValid() {
		result.addError("color", cfg.Color,
			fmt.Sprintf("invalid value %q (must be one of: auto, always, never)", cfg.Color))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case config.LogLevelDebug, config.LogLevelInfo, config.LogLevelWarn, "warning", config.LogLevelError:
	default:
		result.addError("log_level", cfg.LogLevel,
			fmt.Sprintf("invalid value %q (must be one of: debug, info, warn, error)", cfg.LogLevel))
	}

	return result
}
