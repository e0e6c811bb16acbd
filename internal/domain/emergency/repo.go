package emergency

import (
	"context"

	"github.com/google/uuid"
)

type TriageRepository interface {
	Create(ctx context.Context, t *Triage) error
	// GetByAppointment returns (nil, nil) when the appointment has no triage.
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Triage, error)
}

type QueueRepository interface {
	Create(ctx context.Context, q *QueueEntry) error
	// GetByAppointment returns (nil, nil) when the appointment is not queued.
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*QueueEntry, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status QueueStatus) error
	ListByStatus(ctx context.Context, status QueueStatus, limit, offset int) ([]*QueueEntry, int, error)
}
