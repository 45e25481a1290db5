package service

import "errors"

var (
	// ErrValidation marks missing or malformed input, caught before the store.
	ErrValidation = errors.New("validation")
	// ErrInvalidCredentials is returned uniformly for unknown usernames and
	// wrong passwords so responses cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrConflict marks a duplicate unique key.
	ErrConflict = errors.New("conflict")
)
