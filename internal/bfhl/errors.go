package bfhl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes submission failures
type ErrorType string

const (
	// ErrTypeMalformedInput indicates the raw text is not valid JSON
	ErrTypeMalformedInput ErrorType = "malformed_input"

	// ErrTypeMissingField indicates valid JSON without an array "data" field
	ErrTypeMissingField ErrorType = "missing_field"

	// ErrTypeTransport indicates a non-success HTTP status
	ErrTypeTransport ErrorType = "transport"

	// ErrTypeUnknown indicates any other failure during send or decode
	ErrTypeUnknown ErrorType = "unknown"
)

// SubmitError represents a failed submission attempt.
// Malformed-input and missing-field errors are raised before any network
// call; transport and unknown errors are raised after one.
type SubmitError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message is the human-readable text shown to the user
	Message string `json:"message"`

	// StatusCode for transport errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("type=%s", e.Type))

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *SubmitError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *SubmitError) Is(target error) bool {
	if se, ok := target.(*SubmitError); ok {
		return e.Type == se.Type
	}
	return false
}

// Error constructors for the submission error taxonomy

// NewMalformedInputError creates the fixed invalid-JSON error
func NewMalformedInputError() *SubmitError {
	return &SubmitError{
		Type:    ErrTypeMalformedInput,
		Message: "Invalid JSON input",
	}
}

// NewMissingFieldError creates a validation error with the given message
func NewMissingFieldError(message string) *SubmitError {
	return &SubmitError{
		Type:    ErrTypeMissingField,
		Message: message,
	}
}

// NewTransportError creates an error embedding the HTTP status code
func NewTransportError(statusCode int) *SubmitError {
	return &SubmitError{
		Type:       ErrTypeTransport,
		Message:    fmt.Sprintf("request failed with status %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewUnknownError wraps any other send or decode failure
func NewUnknownError(cause error) *SubmitError {
	message := "Unknown error"
	if cause != nil && cause.Error() != "" {
		message = cause.Error()
	}
	return &SubmitError{
		Type:    ErrTypeUnknown,
		Message: message,
		Cause:   cause,
	}
}

// UserMessage extracts the text to display for a submission failure
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}

// IsValidationError checks if an error was raised before any network call
func IsValidationError(err error) bool {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Type == ErrTypeMalformedInput || se.Type == ErrTypeMissingField
	}
	return false
}

// IsTransportError checks if an error carries a non-success HTTP status
func IsTransportError(err error) bool {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Type == ErrTypeTransport
	}
	return false
}
