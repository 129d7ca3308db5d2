package errors

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded reports markup nested deeper than the converter allows.
var ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

// Conversion stages reported by ConversionError.
const (
	StageParse  = "parse"
	StageMerge  = "merge"
	StageRender = "render"
)

// ParseError represents a registry document that could not be decoded.
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

// ValidationError captures a malformed component definition.
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

// ConversionError represents a failure while converting markup. Stage is one
// of StageParse, StageMerge or StageRender.
type ConversionError struct {
	Stage  string
	Detail string
	Err    error
}

// NewConversionError constructs a ConversionError for the given stage.
func NewConversionError(stage, detail string, err error) error {
	return &ConversionError{Stage: stage, Detail: detail, Err: err}
}

func (e *ConversionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return fmt.Sprintf("conversion error [%s] %s: %v", e.Stage, e.Detail, e.Err)
	}
	return fmt.Sprintf("conversion error [%s]: %v", e.Stage, e.Err)
}

// Unwrap exposes the root error.
func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
