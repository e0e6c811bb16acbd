package telemedicine

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// ListByAppointment returns messages oldest first.
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*Message, error)
}
