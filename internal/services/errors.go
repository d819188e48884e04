package services

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionInactive     = errors.New("session is no longer active")
	ErrDuplicateSubmission = errors.New("you have already submitted a response for this session")
	ErrCodeExhausted       = errors.New("failed to generate unique session code")
	ErrStoreUnavailable    = errors.New("database not configured")
)

// ValidationError is a user-correctable input error with a field-level
// message. Handlers surface it as a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
