package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInvalidUsername   = "invalid github username"
	ErrMsgMalformedCalendar = "malformed contribution calendar"
	ErrMsgInvalidYear       = "invalid year"

	// Upstream errors
	ErrMsgUserNotFound        = "user not found"
	ErrMsgRateLimited         = "github api rate limit exceeded"
	ErrMsgUpstreamUnavailable = "github api unavailable"
	ErrMsgTokenRequired       = "github token required"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInvalidUsername   = errors.New(ErrMsgInvalidUsername)
	ErrMalformedCalendar = errors.New(ErrMsgMalformedCalendar)
	ErrInvalidYear       = errors.New(ErrMsgInvalidYear)

	ErrUserNotFound        = errors.New(ErrMsgUserNotFound)
	ErrRateLimited         = errors.New(ErrMsgRateLimited)
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)
	ErrTokenRequired       = errors.New(ErrMsgTokenRequired)

	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
