package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrAppointmentNotFound is returned when the referenced appointment
	// does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrNoMedications is returned when a prescription lists nothing.
	ErrNoMedications = errors.New("prescription requires at least one medication")
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

// Write records a prescription for an appointment, replacing any prior one.
func (s *Service) Write(ctx context.Context, appointmentID, doctorID uuid.UUID, medications []string, notes *string) (*Prescription, error) {
	if len(medications) == 0 {
		return nil, ErrNoMedications
	}

	exists, err := s.appointments.Exists(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return nil, ErrAppointmentNotFound
	}

	p := &Prescription{
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
		Medications:   medications,
		Notes:         notes,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save prescription: %w", err)
	}
	return p, nil
}

// ListByAppointment returns the appointment's prescriptions, newest first.
func (s *Service) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*Prescription, error) {
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
		items = []*Prescription{}
	}
	return items, nil
}
