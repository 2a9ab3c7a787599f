package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Properties resource errors. These classify the warn-and-continue
	// conditions of the properties loader; the loader itself never
	// returns them to the caller.
	ErrResourceNotFound  ErrorCode = "RESOURCE_NOT_FOUND"
	ErrAmbiguousResource ErrorCode = "AMBIGUOUS_RESOURCE"
	ErrReadFailure       ErrorCode = "READ_FAILURE"

	// Extension errors
	ErrExtensionNotFound ErrorCode = "EXTENSION_NOT_FOUND"
	ErrExtensionCreate   ErrorCode = "EXTENSION_CREATE"
)

// ExtloadError represents a structured error with code and details
type ExtloadError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExtloadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExtloadError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ExtloadError) Is(target error) bool {
	var targetErr *ExtloadError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExtloadError with the given code and message
func New(code ErrorCode, message string) *ExtloadError {
	return &ExtloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExtloadError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExtloadError {
	return &ExtloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExtloadError
func Wrap(err error, code ErrorCode, message string) *ExtloadError {
	if err == nil {
		return nil
	}
	return &ExtloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExtloadError {
	if err == nil {
		return nil
	}
	return &ExtloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExtloadError) WithDetail(key string, value interface{}) *ExtloadError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var extErr *ExtloadError
	if errors.As(err, &extErr) {
		return extErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExtloadError
func GetErrorCode(err error) ErrorCode {
	var extErr *ExtloadError
	if errors.As(err, &extErr) {
		return extErr.Code
	}
	return ErrUnknown
}
