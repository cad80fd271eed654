package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal error")
	ErrNetwork        = errors.New("network error")
	ErrSessionExpired = errors.New("session expired")
)

// AppError represents a structured application error. For errors that
// originate from a backend response, Status carries the HTTP status code
// and Message carries the server-provided message verbatim.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput creates an error for input rejected before any network call.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// Forbidden creates a 403 error for callers whose identity is known but who
// lack the required role.
func Forbidden(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     ErrForbidden,
	}
}

// Backend creates an error for an operation the backend reported as failed
// inside a 2xx envelope. The server message is kept verbatim.
func Backend(message string) *AppError {
	return &AppError{
		Code:    "BACKEND_REJECTED",
		Message: message,
		Err:     ErrConflict,
	}
}

// SessionExpired creates the error returned by the request pipeline after
// the backend rejected a call as unauthorized and the local session has
// been torn down.
func SessionExpired() *AppError {
	return &AppError{
		Code:    "SESSION_EXPIRED",
		Message: "session expired, please log in again",
		Status:  http.StatusUnauthorized,
		Err:     ErrSessionExpired,
	}
}

// Network creates the error used when no response was received at all.
func Network(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_ERROR",
		Message: "network error, please check your connection",
		Err:     fmt.Errorf("%w: %w", ErrNetwork, err),
	}
}

// Internal creates an error for unexpected failures.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "something went wrong",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// FromStatus builds an AppError for a non-2xx backend response, keeping the
// server-provided message verbatim when present.
func FromStatus(status int, message string) *AppError {
	e := &AppError{Status: status, Message: message}
	switch status {
	case http.StatusNotFound:
		e.Code, e.Err = "NOT_FOUND", ErrNotFound
	case http.StatusBadRequest:
		e.Code, e.Err = "INVALID_INPUT", ErrInvalidInput
	case http.StatusUnauthorized:
		e.Code, e.Err = "UNAUTHORIZED", ErrUnauthorized
	case http.StatusForbidden:
		e.Code, e.Err = "FORBIDDEN", ErrForbidden
	case http.StatusConflict:
		e.Code, e.Err = "CONFLICT", ErrConflict
	default:
		e.Code, e.Err = "SERVER_ERROR", ErrInternal
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// IsNetwork reports whether err represents a no-response condition. Callers
// use this to keep network failures strictly separate from auth failures.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
