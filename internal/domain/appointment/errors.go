package appointment

import "errors"

var (
	// ErrNotFound is returned when no appointment exists for the given id.
	ErrNotFound = errors.New("appointment not found")

	// ErrSlotConflict is returned when the doctor already has a
	// non-cancelled appointment in the requested slot.
	ErrSlotConflict = errors.New("time slot is already booked")

	// ErrInvalidState is returned when an operation is not allowed in the
	// appointment's current lifecycle state. Callers wrap it with the
	// specific operation and state.
	ErrInvalidState = errors.New("invalid appointment state")

	// ErrAlreadyCancelled is returned when cancelling an appointment twice.
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)
