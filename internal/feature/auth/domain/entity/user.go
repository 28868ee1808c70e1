// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID int64

	// Email is the login identifier. It is unique across all users.
	Email string

	// PasswordHash is a bcrypt hash, or a legacy SHA-256 hex digest awaiting upgrade.
	// It never holds a plaintext password.
	PasswordHash string

	// Name is the display name.
	Name string

	// CreatedAt is assigned by the database.
	CreatedAt time.Time
}
