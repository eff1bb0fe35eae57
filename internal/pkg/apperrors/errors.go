package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrValidationFailed marks client-caused input errors (HTTP 400)
	ErrValidationFailed = errors.New("validation failed")
	// ErrStorage marks datastore failures (HTTP 500)
	ErrStorage = errors.New("storage error")
)

// Client-facing messages
const (
	MsgInvalidInput        = "Invalid input data"
	MsgRegistrationFields  = "Name, email, phone, and linkedin_profile are required fields"
	MsgInvalidLeadStatus   = "Invalid status. Must be one of Accepted, Rejected, Pending, or Waitlisted"
	MsgInternalServerError = "Internal server error"
)

// CustomError represents application-specific errors with a client-facing message
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField records which input field failed. The field is only logged, never returned to the client.
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewValidationError creates a validation error carrying the message sent to the client
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// StorageError wraps a datastore failure with the name of the operation that failed.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a storage failure of operation op
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both the ErrStorage marker and the driver error.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// ValidationMessage returns the client-facing message of a validation error, if err is one.
func ValidationMessage(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && errors.Is(ce.Err, ErrValidationFailed) {
		return ce.Error(), true
	}
	return "", false
}
