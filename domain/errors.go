package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")

	// ErrUnauthorized means no bearer token was presented.
	ErrUnauthorized = errors.New("missing bearer token")
	// ErrInvalidToken covers every verification failure: bad structure,
	// bad signature, wrong algorithm or expiry.
	ErrInvalidToken = errors.New("invalid token")
)
