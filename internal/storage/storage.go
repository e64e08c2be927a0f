package storage

import "errors"

// Domain errors surfaced by the storage layer. Handlers map these to HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrParticipationNotFound = errors.New("participation not found")
	ErrRegistrationNotFound  = errors.New("registration not found")

	ErrNotOrganizer = errors.New("actor is not the event organizer")
	ErrNotOwner     = errors.New("actor does not own the registration")
	ErrNotEligible  = errors.New("principal is not eligible to attend this event")

	ErrIllegalState = errors.New("operation not allowed in current state")
	ErrEventStarted = errors.New("event has already started")

	ErrAlreadyRegistered = errors.New("user already registered for this event")
	ErrAlreadyApplied    = errors.New("vendor already applied to this event")
	ErrCapacityExceeded  = errors.New("event capacity exceeded")
)
