package errors

import (
	"net/http"

	"resumeapp/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Two BaseErrors with the same business code match under errors.Is, so a copy
// made by WithDetails still matches its sentinel.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Identity errors
	ErrIdentityTaken = NewBaseError(
		http.StatusConflict,
		"IDENTITY_TAKEN",
		"a user with this email already exists",
		"",
	)

	// Returned for both an unknown email and a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid or expired token",
		"",
	)

	// Résumé errors
	ErrResumeNotFound = NewBaseError(
		http.StatusNotFound,
		"RESUME_NOT_FOUND",
		"resume not found",
		"",
	)

	ErrNothingToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_TO_UPDATE",
		"nothing to update",
		"",
	)

	// Infrastructure errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"storage is unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// UnauthorizedError is an UNAUTHORIZED rejection that keeps the reason, such
// as an expired token or a deleted subject, reachable through errors.Is.
type UnauthorizedError struct {
	cause error
}

// NewUnauthorizedError creates an UNAUTHORIZED error caused by cause.
func NewUnauthorizedError(cause error) AppError {
	return &UnauthorizedError{cause: cause}
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	if e.cause == nil {
		return ErrUnauthorized.Error()
	}

	return ErrUnauthorized.Error() + ": " + e.cause.Error()
}

// Unwrap exposes the cause.
func (e *UnauthorizedError) Unwrap() error { return e.cause }

// Is matches ErrUnauthorized.
func (e *UnauthorizedError) Is(target error) bool {
	return ErrUnauthorized.Is(target)
}

// HTTPCode returns the HTTP status code
func (e *UnauthorizedError) HTTPCode() int { return ErrUnauthorized.HTTPCode() }

// ErrorCode returns the business error code
func (e *UnauthorizedError) ErrorCode() string { return ErrUnauthorized.ErrorCode() }

// Message returns the user-friendly error message
func (e *UnauthorizedError) Message() string { return ErrUnauthorized.Message() }

// Details is empty on purpose: the reason is for logs, not for clients.
func (e *UnauthorizedError) Details() string { return "" }

// StoreUnavailableError represents a database execution error, implementing the AppError interface
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a database-related error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	if e.err == nil {
		return ErrStoreUnavailable.Message() + ": " + e.details
	}

	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *StoreUnavailableError) Unwrap() error { return e.err }

// Is matches ErrStoreUnavailable.
func (e *StoreUnavailableError) Is(target error) bool {
	return ErrStoreUnavailable.Is(target)
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return ErrStoreUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return ErrStoreUnavailable.Message()
}

// Details is empty: the operation and driver error stay in Error() for logs.
func (e *StoreUnavailableError) Details() string {
	return ""
}
