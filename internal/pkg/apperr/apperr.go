package apperr

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrQuotaExceeded marks the free-tier content generation cap.
	ErrQuotaExceeded = errors.New("free tier limit reached")
	// ErrArchivedLocked marks edits to archived content by non-premium owners.
	ErrArchivedLocked = errors.New("content is archived")
)
