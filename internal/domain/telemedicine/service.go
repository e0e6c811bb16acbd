package telemedicine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidSender is returned when the sender is neither doctor nor
	// patient.
	ErrInvalidSender = errors.New("sender must be doctor or patient")

	// ErrEmptyMessage is returned for blank message bodies.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrAppointmentNotFound is returned when the referenced appointment
	// does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AppointmentSource is the slice of the appointment store this package
// needs; the narrow interface avoids an import cycle.
type AppointmentSource interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo         Repository
	appointments AppointmentSource
}

func NewService(repo Repository, appointments AppointmentSource) *Service {
	return &Service{repo: repo, appointments: appointments}
}

// Send appends a chat message to an appointment's consultation.
func (s *Service) Send(ctx context.Context, appointmentID uuid.UUID, sender Sender, text string) (*Message, error) {
	if sender != SenderDoctor && sender != SenderPatient {
		return nil, ErrInvalidSender
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	exists, err := s.appointments.Exists(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return nil, ErrAppointmentNotFound
	}

	m := &Message{
		AppointmentID: appointmentID,
		Sender:        sender,
		Message:       text,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return m, nil
}

// List returns an appointment's messages, oldest first.
func (s *Service) List(ctx context.Context, appointmentID uuid.UUID) ([]*Message, error) {
	exists, err := s.appointments.Exists(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return nil, ErrAppointmentNotFound
	}
	items, err := s.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Message{}
	}
	return items, nil
}
