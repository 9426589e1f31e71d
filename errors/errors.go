package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ErrInvalidPayload indicates the request body could not be bound or failed
// validation
func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_PAYLOAD,
		Message:   "Invalid request payload",
		Timestamp: time.Now(),
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_NOT_FOUND,
		Message:   fmt.Sprintf("%s not found", resource),
		Timestamp: time.Now(),
	}
}
