package apperrors

import "errors"

// Sentinel errors returned by the application layer. Handlers map them
// to HTTP status codes; anything unrecognized becomes a 500.
var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("authentication failed")
	ErrInvalidToken       = errors.New("invalid token")
)
