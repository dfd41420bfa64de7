// Package errors classifies failures for the command line surface.
package errors

import (
	stderrors "errors"
	"fmt"

	"basecalc/core/conversion"
	"basecalc/core/digit"
	"basecalc/core/rational"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a malformed value, digit, base, or step limit
	TypeInput Type = "INPUT_ERROR"

	// TypeArithmetic indicates division by zero or 64-bit overflow
	TypeArithmetic Type = "ARITHMETIC_ERROR"

	// TypeParsing indicates an unreadable batch or config file
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates anything else
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a classified error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ExitCode maps the error type to a process exit status
func (e *Error) ExitCode() int {
	switch e.Type {
	case TypeInput:
		return 2
	case TypeArithmetic:
		return 3
	case TypeParsing, TypeConfig:
		return 4
	}
	return 1
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error chain contains an *Error of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Classify wraps err with the Type matching its sentinel cause.
// An err that is already an *Error is returned unchanged.
func Classify(message string, err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return Wrap(typeOf(err), message, err)
}

func typeOf(err error) Type {
	switch {
	case stderrors.Is(err, rational.ErrDivisionByZero),
		stderrors.Is(err, rational.ErrOverflow):
		return TypeArithmetic
	case stderrors.Is(err, digit.ErrInvalidDigit),
		stderrors.Is(err, digit.ErrInvalidBase),
		stderrors.Is(err, conversion.ErrEmptyInput),
		stderrors.Is(err, conversion.ErrMalformedInput),
		stderrors.Is(err, conversion.ErrInvalidSteps),
		stderrors.Is(err, conversion.ErrFractionRange),
		stderrors.Is(err, conversion.ErrNegativeValue),
		stderrors.Is(err, conversion.ErrNotInteger):
		return TypeInput
	}
	return TypeInternal
}
