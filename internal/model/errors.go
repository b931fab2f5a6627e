package model

import "errors"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned by registration when the email is taken.
	ErrDuplicateEmail = errors.New("email already exists")
)
