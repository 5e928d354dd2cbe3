// Package common defines shared constants and sentinel errors used across
// client and server layers of textfix. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors.
	ErrorValidation       = errors.New("validation error")
	ErrorPasswordTooShort = errors.New("Password must be at least 6 characters long")
	ErrorEmailInvalid     = errors.New("Enter a valid email")
	ErrorInputEmpty       = errors.New("Input text must not be empty")

	// Account errors.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailNotVerified   = errors.New("Email is not verified")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// One-time code errors.
	ErrOTPInvalid = errors.New("invalid or expired verification code")
	ErrOTPLimited = errors.New("too many verification code requests")
)
