package errors

import "errors"

var (
	ErrUnauthenticated    = errors.New("session has no role")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSessionData = errors.New("invalid session data")
	ErrMissingOrganization = errors.New("organization context is missing")
)
