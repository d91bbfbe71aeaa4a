package errors

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidRecordData  = errors.New("invalid record data")
	ErrBackendUnavailable = errors.New("backend unreachable")
	ErrInternalServer     = errors.New("internal server error")
)

// BackendError carries a structured {error} body returned by the upstream
// backend; the message is surfaced to the user verbatim.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Message
}

// ValidationError is a client-side validation failure raised before any
// network call is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
