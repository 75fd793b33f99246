package domain

import (
	"errors"
	"strings"
)

// Auth errors (401).
var (
	ErrTokenMissing        = errors.New("token not provided")
	ErrMalformedAuthHeader = errors.New("invalid authorization header format")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserInactive        = errors.New("user is inactive")
)

// Authorization errors (403).
var (
	ErrForbidden        = errors.New("access forbidden")
	ErrInsufficientRole = errors.New("admin role required")
)

// Not-found errors (404).
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

// Conflict errors (400, per the API contract).
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already in use")
	ErrUserExists    = errors.New("user already exists")
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidStatus   = errors.New("invalid product status")
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")
)

// ValidationError carries field-level validation messages so handlers can
// return them as a list alongside the generic 400.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// NewValidationError builds a ValidationError from one or more reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}
