package prescription

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Upsert inserts the prescription or, when the appointment already has
	// one, replaces its medications and notes.
	Upsert(ctx context.Context, p *Prescription) error
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*Prescription, error)
}
