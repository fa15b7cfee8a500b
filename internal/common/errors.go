package common

import (
	"errors"
	"net/http"
)

// Error codes form a closed set; handlers map them to HTTP statuses and the
// canonical error body. Nothing else should invent codes.
const (
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeDomainConflict  = "DOMAIN_CONFLICT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInternal        = "INTERNAL"
)

// AppError represents an error with an attached code and HTTP status.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// ValidationError reports malformed input. Details may carry a field-errors map.
func ValidationError(message string, details any) *AppError {
	return &AppError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusBadRequest, Details: details}
}

// NotFoundError reports unresolved references. The message should enumerate
// every missing key, not just the first.
func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

// DomainConflictError reports a business-invariant violation caused by bad
// upstream data. It is never auto-resolved.
func DomainConflictError(message string) *AppError {
	return &AppError{Code: CodeDomainConflict, Message: message, HTTPStatus: http.StatusConflict}
}

// InvalidArgumentError reports a defensive invariant violation inside entity
// construction or pure computation.
func InvalidArgumentError(message string) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message, HTTPStatus: http.StatusBadRequest}
}

// InternalError wraps anything unanticipated; detail stays server-side.
func InternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal error", HTTPStatus: http.StatusInternalServerError, Err: err}
}

// IsAppError checks whether the error is an AppError.
func IsAppError(err error) bool {
	var target *AppError
	return errors.As(err, &target)
}

// AsAppError extracts the AppError from an error chain, falling back to an
// InternalError wrapper so every failure maps to the canonical shape.
func AsAppError(err error) *AppError {
	var target *AppError
	if errors.As(err, &target) {
		return target
	}
	return InternalError(err)
}
