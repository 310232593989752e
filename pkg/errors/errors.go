package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying a stable kind, a caller-facing
// message and the HTTP status code it maps to. The (status, message) pair for a
// given kind never changes; clients key off both.
type AppError struct {
	Kind    string
	Message string
	Status  int
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *AppError) HTTPStatus() int {
	return e.Status
}

// WithCause returns a copy of the error carrying an underlying cause.
// The cause is for server-side logs only; Message stays what the caller sees.
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{Kind: e.Kind, Message: e.Message, Status: e.Status, Err: err}
}

// Is reports whether target is the same catalog entry, so that
// errors.Is(err, catalogErr) matches copies produced by WithCause.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Kind == appErr.Kind
}

// New creates a new AppError with the given kind, message and status code.
func New(kind, message string, status int) *AppError {
	return &AppError{Kind: kind, Message: message, Status: status}
}

// Account error catalog. The messages are part of the API contract.
var (
	ErrMissingName            = New("missing_name", "name is required", http.StatusUnprocessableEntity)
	ErrMissingEmail           = New("missing_email", "email is required", http.StatusUnprocessableEntity)
	ErrInvalidEmail           = New("invalid_email", "email is not a valid address", http.StatusUnprocessableEntity)
	ErrMissingPassword        = New("missing_password", "password is required", http.StatusUnprocessableEntity)
	ErrMissingConfirmPassword = New("missing_confirm_password", "password confirmation is required", http.StatusUnprocessableEntity)
	ErrPasswordMismatch       = New("password_mismatch", "password and confirmation do not match", http.StatusUnprocessableEntity)
	ErrUserExists             = New("user_exists", "email is already registered", http.StatusConflict)
	ErrEmailTaken             = New("email_taken", "email is already in use by another account", http.StatusConflict)
	ErrUserNotFound           = New("user_not_found", "user not found", http.StatusNotFound)
	ErrInvalidPassword        = New("invalid_password", "invalid password", http.StatusUnauthorized)
	ErrInvalidToken           = New("invalid_token", "invalid or expired token", http.StatusUnauthorized)
	ErrUnauthorized           = New("unauthorized", "authentication required", http.StatusUnauthorized)
	ErrCouldNotCreateUser     = New("could_not_create_user", "could not create user, try again later", http.StatusInternalServerError)
	ErrCouldNotUpdateUser     = New("could_not_update_user", "could not update user, try again later", http.StatusInternalServerError)
)

// Task error catalog.
var (
	ErrMissingTitle       = New("missing_title", "title is required", http.StatusUnprocessableEntity)
	ErrInvalidQuery       = New("invalid_query", "search query is invalid", http.StatusUnprocessableEntity)
	ErrTaskNotFound       = New("task_not_found", "task not found", http.StatusNotFound)
	ErrCouldNotCreateTask = New("could_not_create_task", "could not create task, try again later", http.StatusInternalServerError)
	ErrCouldNotUpdateTask = New("could_not_update_task", "could not update task, try again later", http.StatusInternalServerError)
)

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
