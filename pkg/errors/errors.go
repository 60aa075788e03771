// Package errors defines the typed errors surfaced while loading provider
// configuration. The UI core itself never returns errors.
package errors

import (
	"fmt"
)

// ParseError represents a provider file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Format  string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path, format string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Format: format, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	prefix := "parse error"
	if e.Format != "" {
		prefix = e.Format + " parse error"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", prefix, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures provider configuration issues.
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

// UnsupportedFormatError reports a provider file whose extension has no decoder.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

// NewUnsupportedFormatError constructs an UnsupportedFormatError.
func NewUnsupportedFormatError(path, ext string) error {
	return &UnsupportedFormatError{Path: path, Extension: ext}
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Extension == "" {
		return fmt.Sprintf("unsupported config format: %s has no extension", e.Path)
	}
	return fmt.Sprintf("unsupported config format %q: %s", e.Extension, e.Path)
}
