package stations

import "errors"

var (
	// ErrNotFound is returned when no station matches the requested id.
	ErrNotFound = errors.New("station not found")
	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("invalid station")
	// ErrInvalidTransition is returned for a status change the moderation flow does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)
