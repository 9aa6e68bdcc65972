package user

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput is returned when a registration lacks a username or password.
	ErrInvalidInput = errors.New("username and password are required")
	// ErrAlreadyExists is returned when the username is taken.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned when a username is unknown to the registry.
	ErrNotFound = errors.New("user not found")
)

// User is an account record. Password holds whatever the configured hasher
// produced, which is the plaintext under the plain scheme.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
