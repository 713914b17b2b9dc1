// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-io.

package api

import (
	"errors"
	"fmt"
	"io"
)

// Common errors used across the library.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrClosedForWrite   = errors.New("channel is closed for write")
	ErrChannelCancelled = errors.New("channel was cancelled")
	ErrJobReplaced      = errors.New("job replaced by a newer attachment")
	ErrPoolExhausted    = errors.New("native memory exhausted")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeClosed
	ErrCodeCancelled
	ErrCodeResourceExhausted
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code onto its sentinel so errors.Is keeps working.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeClosed:
		return ErrClosedForWrite
	case ErrCodeCancelled:
		return ErrChannelCancelled
	case ErrCodeResourceExhausted:
		return ErrPoolExhausted
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// InvalidRange reports a negative offset/length or a range past size.
// size < 0 means the upper bound is not checked. The bound is compared
// without forming offset+length so huge lengths cannot wrap around.
func InvalidRange(offset, length, size int64) error {
	if offset >= 0 && length >= 0 && (size < 0 || (offset <= size && length <= size-offset)) {
		return nil
	}
	return NewError(ErrCodeInvalidArgument, "invalid offset or length").
		WithContext("offset", offset).
		WithContext("length", length).
		WithContext("size", size)
}

// IncompleteReadError is returned by exact-length reads when the channel
// reaches a clean end of stream before the request is satisfied.
type IncompleteReadError struct {
	Required  int64 // bytes still needed when the stream ended
	Available int64 // bytes that were left in the channel
}

func (e *IncompleteReadError) Error() string {
	return fmt.Sprintf("unexpected EOF: %d more bytes required, %d available", e.Required, e.Available)
}

// Is makes IncompleteReadError match io.ErrUnexpectedEOF.
func (e *IncompleteReadError) Is(target error) bool {
	return target == io.ErrUnexpectedEOF
}
