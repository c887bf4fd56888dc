package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
// Cross-business lookups also report this so tenants cannot probe each other's ids.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a monetary value could not be parsed or is out of range.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalancedEntry indicates a journal entry whose debits and credits differ.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// ErrInvalidState indicates an operation that is not allowed in the resource's current status.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrSameAccount indicates a transfer whose source and destination are the same account.
var ErrSameAccount = errors.New("source and destination accounts are the same")

// ErrConcurrencyConflict is reserved for optimistic-lock failures. Writers currently
// serialise on row locks, so nothing returns it yet.
var ErrConcurrencyConflict = errors.New("concurrent modification detected")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInternal wraps unexpected storage or infrastructure failures.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewInternalError wraps err as an ErrInternal-matching AppError.
func NewInternalError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrInternal, err))
}

// NewNotFoundError returns an error matching ErrNotFound for the named resource.
func NewNotFoundError(resource, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, resource, id)
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewInvalidStateError returns an error matching ErrInvalidState.
func NewInvalidStateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error from the core to the status code handlers should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnbalancedEntry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrDuplicate), errors.Is(err, ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
