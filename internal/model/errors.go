package model

import "errors"

var (
	// ErrNotFound is returned by stores when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrPasswordMismatch is returned by a PasswordHasher on a wrong password.
	ErrPasswordMismatch = errors.New("password mismatch")
)
