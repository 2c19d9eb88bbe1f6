package auth

import "errors"

// Sentinel errors shared between adapters and services.
var (
	// ErrEmailTaken is returned when an account already exists for the email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrCredentialNotFound is returned when no credential exists for a lookup.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
