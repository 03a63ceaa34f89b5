package domain

import "errors"

// Error taxonomy. Each sentinel maps to exactly one HTTP status in the API
// error handler; services wrap them with fmt.Errorf("%w: detail") so callers
// can match with errors.Is while keeping the detail message.
var (
	// ErrUnauthenticated covers a missing, malformed, or unverifiable credential.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden covers a valid identity whose role is outside the allow-list.
	ErrForbidden = errors.New("access forbidden")
	// ErrRateLimited covers either throttle tier rejecting the request.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrValidation covers missing or malformed required fields.
	ErrValidation = errors.New("invalid request")
	// ErrUpstream covers a failed gateway or identity-provider call.
	ErrUpstream = errors.New("upstream call failed")
)

// Account and catalog errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
)
