package errors

import (
	"net/http"
	"strconv"

	"kinoauth/internal/errors"
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

// WithDetails adds detailed error information
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
	// Token verification errors. All map to an unauthorized outcome.
	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"token does not have a valid format",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"token signature verification failed",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"token is expired",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"token has been revoked",
		"",
	)

	// Authentication-stage errors. Messages stay generic on purpose so the
	// response does not reveal which check failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid login or password",
		"",
	)

	ErrRefreshTokenNotRecognized = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_NOT_RECOGNIZED",
		"refresh token is not recognized",
		"",
	)

	// OAuth-stage errors
	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"oauth provider is not supported",
		"",
	)

	ErrProviderError = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_ERROR",
		"oauth provider returned an error",
		"",
	)

	ErrMissingAuthorizationCode = NewBaseError(
		http.StatusBadRequest,
		"MISSING_AUTHORIZATION_CODE",
		"no authorization code provided",
		"",
	)

	ErrOAuthAccountAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"OAUTH_ACCOUNT_ALREADY_LINKED",
		"oauth account is already linked",
		"",
	)

	ErrOAuthAccountNotLinked = NewBaseError(
		http.StatusConflict,
		"OAUTH_ACCOUNT_NOT_LINKED",
		"oauth account is not linked",
		"",
	)

	// Session-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"login or email is already registered",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"user account is deactivated",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// ProviderExchangeError is returned when an outbound provider exchange
// (token or profile request) fails. It carries the provider's status and
// response body so the caller can report the upstream detail.
type ProviderExchangeError struct {
	Provider string
	Status   int
	Body     string
	err      error
}

// NewProviderExchangeError creates an error describing a failed provider exchange.
func NewProviderExchangeError(provider string, status int, body string, err error) AppError {
	return &ProviderExchangeError{
		Provider: provider,
		Status:   status,
		Body:     body,
		err:      err,
	}
}

// Error implements the error interface
func (e *ProviderExchangeError) Error() string {
	if e.err != nil {
		return "provider exchange failed: " + e.err.Error()
	}

	return "provider exchange failed with status " + strconv.Itoa(e.Status)
}

// Unwrap exposes the transport error, if any.
func (e *ProviderExchangeError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ProviderExchangeError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderExchangeError) ErrorCode() string {
	return "PROVIDER_EXCHANGE_FAILED"
}

// Message returns the user-friendly error message
func (e *ProviderExchangeError) Message() string {
	return "exchange with oauth provider " + e.Provider + " failed"
}

// Details returns detailed error information
func (e *ProviderExchangeError) Details() string {
	if e.Body != "" {
		return "status " + strconv.Itoa(e.Status) + ": " + e.Body
	}
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
