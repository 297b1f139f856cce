// Package errors defines the typed errors returned when loading themes and styles.
package errors

import (
	"fmt"
)

// Document kinds reported by ParseError.
const (
	DocumentTheme = "theme"
	DocumentStyle = "style"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Document string
	Path     string
	Line     int
	Message  string
	Err      error
}

// NewParseError constructs a ParseError for a theme or style document.
func NewParseError(document, path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Document: document, Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	prefix := "parse error"
	if e.Document != "" {
		prefix = fmt.Sprintf("%s parse error", e.Document)
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

// ValidationError captures schema violations in a theme or style document.
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

// LookupError reports a theme path that did not resolve when the caller asked for a
// strict lookup. The resolver itself never returns it.
type LookupError struct {
	Path string
}

// NewLookupError constructs a LookupError.
func NewLookupError(path string) error {
	return &LookupError{Path: path}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("lookup error: %q not found in theme", e.Path)
}
