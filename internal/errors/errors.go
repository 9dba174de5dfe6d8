// Package errors provides coded errors for the daemon. A code is a stable
// identifier for branching and logging; message and data are presentation.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Re-exported so callers never juggle two errors packages.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
)

// ErrorCode identifies one failure category.
type ErrorCode string

// Error is an error carrying a code, an optional cause and optional
// structured data.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory mints coded errors.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}

// New returns a Factory.
func New() Factory {
	return factory{}
}

type factory struct{}

func (factory) New(code ErrorCode) Error {
	return &codedError{code: code}
}

func (factory) Wrap(code ErrorCode, err error) Error {
	return &codedError{code: code, cause: err}
}

func (factory) WithMessage(code ErrorCode, msg string) Error {
	return &codedError{code: code, message: msg}
}

func (factory) WithData(code ErrorCode, data any) Error {
	return &codedError{code: code, data: data}
}

type codedError struct {
	code    ErrorCode
	message string
	cause   error
	data    any
}

func (e *codedError) Error() string {
	msg := e.message
	if msg == "" {
		msg = GetErrorMessage(e.code)
	}

	switch {
	case e.data != nil:
		return fmt.Sprintf("%s: %v", msg, e.data)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", msg, e.cause)
	default:
		return msg
	}
}

func (e *codedError) Code() ErrorCode { return e.code }
func (e *codedError) Unwrap() error   { return e.cause }
func (e *codedError) GetData() any    { return e.data }

func (e *codedError) WithMessage(msg string) Error {
	clone := *e
	clone.message = msg

	return &clone
}

func (e *codedError) WithData(data any) Error {
	clone := *e
	clone.data = data

	return &clone
}

// IsErrorCode reports whether err carries the given code anywhere in its
// chain.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var coded Error
		if !As(err, &coded) {
			return false
		}
		if coded.Code() == code {
			return true
		}
		err = coded.Unwrap()
	}

	return false
}
