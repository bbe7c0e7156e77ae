package services

import "errors"

// Failure kinds returned by the booking and review services. Handlers map
// these to HTTP statuses with errors.Is; everything else is a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrSchedulingConflict = errors.New("scheduling conflict")
	ErrValidation         = errors.New("validation failed")
)
