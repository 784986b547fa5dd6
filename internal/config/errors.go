package config

import (
	"errors"
	"fmt"

	"github.com/dshills/tagedit/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a value fails validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrWatcherClosed indicates the watcher was used after Close.
	ErrWatcherClosed = errors.New("config watcher closed")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Unwrap makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
