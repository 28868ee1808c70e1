package usecase

import "goal_tracker/internal/shared/apperr"

var (
	// ErrCredentialsRequired is returned when login is called without an email or password.
	ErrCredentialsRequired = apperr.Validation("Email and password required")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")

	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = apperr.Unauthorized("Token is invalid")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.NotFound("User not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperr.Conflict("Email already registered")

	// ErrTooManyAttempts is returned while a client is locked out after repeated login failures.
	ErrTooManyAttempts = apperr.TooManyRequests("Too many login attempts")

	// Registration validation failures.
	ErrInvalidEmail     = apperr.Validation("A valid email is required")
	ErrPasswordTooShort = apperr.Validation("Password must be at least 8 characters long")
	ErrNameRequired     = apperr.Validation("Name is required")
)
