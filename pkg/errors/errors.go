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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pack errors
	ErrPacksRootNotFound ErrorCode = "PACKS_ROOT_NOT_FOUND"
	ErrPackNotFound      ErrorCode = "PACK_NOT_FOUND"
	ErrPackAccess        ErrorCode = "PACK_ACCESS"
	ErrPacksFailed       ErrorCode = "PACKS_FAILED"

	// Manifest errors
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestStale ErrorCode = "MANIFEST_STALE"
)

// StemdexError represents a structured error with code and details
type StemdexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StemdexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StemdexError) Unwrap() error {
	return e.Wrapped
}

// Is matches any StemdexError carrying the same code
func (e *StemdexError) Is(target error) bool {
	var targetErr *StemdexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StemdexError with the given code and message
func New(code ErrorCode, message string) *StemdexError {
	return &StemdexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StemdexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StemdexError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a StemdexError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *StemdexError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StemdexError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *StemdexError) WithDetail(key string, value interface{}) *StemdexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sErr *StemdexError
	if errors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StemdexError
func GetErrorCode(err error) ErrorCode {
	var sErr *StemdexError
	if errors.As(err, &sErr) {
		return sErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StemdexError
func GetErrorDetails(err error) map[string]interface{} {
	var sErr *StemdexError
	if errors.As(err, &sErr) {
		return sErr.Details
	}
	return nil
}
