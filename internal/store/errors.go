package store

import "errors"

var (
	// ErrNotFound is returned when no row matches the given id.
	ErrNotFound = errors.New("record not found")

	// ErrRoomUnavailable is returned when a requested room overlaps an
	// active booking for the same date range.
	ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

	// ErrInvalidTransition is returned when a status change or date edit
	// is not allowed from the booking's current status.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
