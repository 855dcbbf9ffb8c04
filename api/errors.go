// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the ring buffer.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrBufferFull        = errors.New("ring buffer full")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeInternal
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeResourceExhausted:
		return "resource_exhausted"
	case ErrCodeInternal:
		return "internal"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel this error was built from, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches the generic sentinel for the error's code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return target == ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return target == ErrResourceExhausted
	}
	return false
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a structured error around a sentinel cause.
func Wrap(code ErrorCode, cause error) *Error {
	e := NewError(code, cause.Error())
	e.cause = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
