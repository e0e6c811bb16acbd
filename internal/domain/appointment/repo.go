package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persists a new appointment. A concurrent booking of the same
	// slot surfaces as ErrSlotConflict.
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// FindConflict returns the non-cancelled appointment occupying the
	// doctor's slot, excluding excludeID (uuid.Nil excludes nothing), or
	// (nil, nil) when the slot is free.
	FindConflict(ctx context.Context, doctorID uuid.UUID, date time.Time, slot string, excludeID uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Appointment, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	// BookedSlots returns the non-cancelled time slots for a doctor on a
	// date.
	BookedSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	// UpdateSchedule moves an appointment to a new date and slot. A
	// concurrent booking of the target slot surfaces as ErrSlotConflict.
	UpdateSchedule(ctx context.Context, id uuid.UUID, date time.Time, slot string) error
}
