// Package odbcbatch provides buffered, batch-oriented result set retrieval for ODBC-style drivers.
package odbcbatch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorType represents the different classes of failures surfaced by this package.
type ErrorType int

const (
	// ErrDriver is a failure reported by the underlying driver call.
	ErrDriver ErrorType = iota
	// ErrInvalidValue means a value does not fit its bound native layout.
	ErrInvalidValue
	// ErrArgumentCountMismatch means a parameter set has the wrong arity.
	ErrArgumentCountMismatch
	// ErrLogic means a type code could not be represented by the client.
	ErrLogic
	// ErrClosed means the object was used after Close.
	ErrClosed
)

func (t ErrorType) String() string {
	switch t {
	case ErrDriver:
		return "driver error"
	case ErrInvalidValue:
		return "invalid value"
	case ErrArgumentCountMismatch:
		return "argument count mismatch"
	case ErrLogic:
		return "logic error"
	case ErrClosed:
		return "closed"
	default:
		return fmt.Sprintf("error type %d", int(t))
	}
}

// Error is an odbcbatch-specific error type.
type Error struct {
	Type    ErrorType
	Message string
	// State is the five character SQLSTATE for driver errors, if known.
	State string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.State != "" {
		return fmt.Sprintf("odbcbatch: %s: [%s] %s", e.Type, e.State, e.Message)
	}
	return fmt.Sprintf("odbcbatch: %s: %s", e.Type, e.Message)
}

// NewError creates a new Error.
func NewError(typ ErrorType, message string) *Error {
	return &Error{
		Type:    typ,
		Message: message,
	}
}

// NewDriverError creates an ErrDriver error carrying the native diagnostic.
// Driver implementations use it to report failed calls.
func NewDriverError(state, message string) *Error {
	return &Error{
		Type:    ErrDriver,
		Message: message,
		State:   state,
	}
}

func newInvalidValueError(format string, args ...interface{}) error {
	return errors.WithStack(NewError(ErrInvalidValue, fmt.Sprintf(format, args...)))
}

func newLogicError(format string, args ...interface{}) error {
	return errors.WithStack(NewError(ErrLogic, fmt.Sprintf(format, args...)))
}

// IsError checks if an error, or any error it wraps, is of a specific type.
func IsError(err error, typ ErrorType) bool {
	var batchErr *Error
	if !errors.As(err, &batchErr) {
		return false
	}
	return batchErr.Type == typ
}

// driverCall annotates a failed driver call with a stack trace. The
// original error stays reachable through errors.As and errors.Cause.
func driverCall(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
