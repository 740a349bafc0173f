package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Item source errors
	ErrCodeItemsNotFound     ErrorCode = "ITEMS_NOT_FOUND"
	ErrCodeItemsInvalid      ErrorCode = "ITEMS_INVALID"
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeWatchFailed       ErrorCode = "WATCH_FAILED"

	// Terminal errors
	ErrCodeNotATerminal ErrorCode = "NOT_A_TERMINAL"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// GridError represents a structured error with context
type GridError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *GridError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GridError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *GridError) WithDetail(key string, value interface{}) *GridError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *GridError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new GridError
func New(code ErrorCode, message string) *GridError {
	return &GridError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GridError
func Wrap(err error, code ErrorCode, message string) *GridError {
	return &GridError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific GridError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, looking through wrapped
// causes until it finds a GridError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	gridErr, ok := err.(*GridError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return gridErr.Code
}
