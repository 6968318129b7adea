package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// Sentinels matched through errors.Is by the typed errors below.
var (
	ErrInvalidVariantTable = stdErrors.New("invalid variant table")
	ErrUnknownAxis         = stdErrors.New("unknown axis")
	ErrUnknownOption       = stdErrors.New("unknown option")
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures a single structural problem in a definition.
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

// InvalidVariantTableError reports every violation found while constructing a
// variant table.
type InvalidVariantTableError struct {
	Table      string
	Violations []error
}

// NewInvalidVariantTableError constructs an InvalidVariantTableError.
func NewInvalidVariantTableError(table string, violations []error) error {
	return &InvalidVariantTableError{Table: table, Violations: append([]error(nil), violations...)}
}

func (e *InvalidVariantTableError) Error() string {
	if e == nil {
		return ""
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Error())
	}

	name := e.Table
	if name == "" {
		name = "<unnamed>"
	}
	noun := "violations"
	if len(parts) == 1 {
		noun = "violation"
	}
	return fmt.Sprintf("invalid variant table %s: %d %s: %s", name, len(parts), noun, strings.Join(parts, "; "))
}

// Is matches ErrInvalidVariantTable.
func (e *InvalidVariantTableError) Is(target error) bool {
	return target == ErrInvalidVariantTable
}

// Unwrap exposes the individual violations.
func (e *InvalidVariantTableError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Violations
}

// UnknownAxisError indicates a selection named an axis the table does not declare.
type UnknownAxisError struct {
	Table string
	Axis  string
}

// NewUnknownAxisError constructs an UnknownAxisError.
func NewUnknownAxisError(table, axis string) error {
	return &UnknownAxisError{Table: table, Axis: axis}
}

func (e *UnknownAxisError) Error() string {
	if e == nil {
		return ""
	}
	if e.Table != "" {
		return fmt.Sprintf("unknown axis %q in table %s", e.Axis, e.Table)
	}
	return fmt.Sprintf("unknown axis %q", e.Axis)
}

// Is matches ErrUnknownAxis.
func (e *UnknownAxisError) Is(target error) bool {
	return target == ErrUnknownAxis
}

// UnknownOptionError indicates a selection named an option its axis does not offer.
type UnknownOptionError struct {
	Table   string
	Axis    string
	Option  string
	Allowed []string
}

// NewUnknownOptionError constructs an UnknownOptionError.
func NewUnknownOptionError(table, axis, option string, allowed []string) error {
	return &UnknownOptionError{Table: table, Axis: axis, Option: option, Allowed: append([]string(nil), allowed...)}
}

func (e *UnknownOptionError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("unknown option %q for axis %q", e.Option, e.Axis)
	if e.Table != "" {
		msg += " in table " + e.Table
	}
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// Is matches ErrUnknownOption.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}
