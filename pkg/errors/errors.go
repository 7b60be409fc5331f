// Package errors defines the typed errors returned by scene loading and the
// command line.
package errors

import (
	"fmt"
)

// ParseError reports a scene file that could not be read or decoded. Line is
// the YAML line when the decoder reported one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a scene field that failed validation. Field uses
// the YAML path, e.g. "sliders[2].max".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FlagError reports an unusable command line flag value.
type FlagError struct {
	Flag    string
	Message string
}

// NewFlagError constructs a FlagError.
func NewFlagError(flag, message string) error {
	return &FlagError{Flag: flag, Message: message}
}

func (e *FlagError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Message)
}
