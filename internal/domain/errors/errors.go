package errors

import (
	"net/http"

	"gateway/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
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
	return e.message
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

// Caller-visible messages. The whole 401 family deliberately shares one
// generic message and business code so a response never reveals whether the
// username, the password, or the token was at fault.
const (
	MsgInvalidCredentials = "Could not validate credentials"
	MsgBackendUnreachable = "Could not connect to other services"
)

// Predefined error types. The sentinels stay distinct so the service layer
// and tests can tell the failure modes apart with errors.Is.
var (
	// ErrUserNotFound: no credential record for the username (login), or the
	// token subject no longer resolves (validation).
	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		MsgInvalidCredentials,
		"",
	)

	// ErrPasswordMismatch: password verification against the stored hash failed.
	ErrPasswordMismatch = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		MsgInvalidCredentials,
		"",
	)

	// ErrCorruptedToken: the token failed its signature, structure, or expiry
	// check. The codec does not distinguish which.
	ErrCorruptedToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		MsgInvalidCredentials,
		"",
	)

	// ErrEmptyClaim: a decoded token carries no usable subject.
	ErrEmptyClaim = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		MsgInvalidCredentials,
		"",
	)

	// ErrStoreUnavailable: the credential store is unreachable or timed out.
	// Distinct from not-found; surfaces as a 500, never a 401.
	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		MsgBackendUnreachable,
		"",
	)

	// ErrBackendUnavailable: a downstream service could not be reached while
	// forwarding a proxied request.
	ErrBackendUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"BACKEND_UNAVAILABLE",
		MsgBackendUnreachable,
		"",
	)

	// ErrValidationFailed: the request body or form failed validation.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)

	// ErrInternalError: fallback for anything unclassified.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendStatusError carries a downstream service's error status through the
// gateway, implementing the AppError interface so the boundary translates it
// exactly once.
type BackendStatusError struct {
	status  int
	backend string
	detail  string
}

// NewBackendStatusError creates an error for a non-2xx downstream response.
func NewBackendStatusError(status int, backend, detail string) AppError {
	return &BackendStatusError{
		status:  status,
		backend: backend,
		detail:  detail,
	}
}

// Error implements the error interface
func (e *BackendStatusError) Error() string {
	return e.backend + " backend returned " + http.StatusText(e.status)
}

// HTTPCode returns the downstream HTTP status code unchanged.
func (e *BackendStatusError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *BackendStatusError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendStatusError) Message() string {
	if e.detail != "" {
		return e.detail
	}

	return http.StatusText(e.status)
}

// Details returns detailed error information
func (e *BackendStatusError) Details() string {
	return e.detail
}
