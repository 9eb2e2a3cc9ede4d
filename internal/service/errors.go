package service

import "errors"

// Messages are returned to API clients verbatim.
var (
	ErrMissingFields      = errors.New("All fields are required")
	ErrPasswordTooLong    = errors.New("Password must be at most 72 bytes")
	ErrEmailInUse         = errors.New("Email already in use.")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
