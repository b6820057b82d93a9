package domain

import "errors"

// Caller-facing error classes. Operations wrap these with detail using
// fmt.Errorf and callers classify with errors.Is.
var (
	// ErrNotFound indicates the referenced campaign or application does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the actor does not own the entity it tries to mutate.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition indicates the target status is unreachable from the
	// current status, or a system-only status was requested by an actor.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidState indicates the operation requires a status the entity does
	// not currently hold.
	ErrInvalidState = errors.New("invalid state")
	// ErrValidation indicates malformed input fields.
	ErrValidation = errors.New("validation error")
)
