package emergency

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotInQueue is returned when the appointment has no queue entry.
	ErrNotInQueue = errors.New("appointment is not in the emergency queue")

	// ErrAppointmentNotFound is returned when the referenced appointment
	// does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AppointmentSource is the slice of the appointment store this package
// needs. Keeping it narrow avoids an import cycle with the appointment
// package, which depends on this one for triage.
type AppointmentSource interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	triage       TriageRepository
	queue        QueueRepository
	appointments AppointmentSource
}

func NewService(triage TriageRepository, queue QueueRepository, appointments AppointmentSource) *Service {
	return &Service{triage: triage, queue: queue, appointments: appointments}
}

// Approve marks the queue entry for an appointment as approved. The status
// write is unconditional: re-reviewing an already reviewed entry is allowed
// and simply records the latest decision.
func (s *Service) Approve(ctx context.Context, appointmentID uuid.UUID) error {
	return s.review(ctx, appointmentID, QueueApproved)
}

// Reject marks the queue entry for an appointment as rejected. The
// appointment itself is untouched; queue review never changes scheduling
// state.
func (s *Service) Reject(ctx context.Context, appointmentID uuid.UUID) error {
	return s.review(ctx, appointmentID, QueueRejected)
}

func (s *Service) review(ctx context.Context, appointmentID uuid.UUID, status QueueStatus) error {
	exists, err := s.appointments.Exists(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return ErrAppointmentNotFound
	}
	return s.queue.UpdateStatus(ctx, appointmentID, status)
}

// Queue lists queue entries with the given status, oldest first.
func (s *Service) Queue(ctx context.Context, status QueueStatus, limit, offset int) ([]*QueueEntry, int, error) {
	return s.queue.ListByStatus(ctx, status, limit, offset)
}

// TriageFor returns the triage record for an appointment, or nil when the
// appointment was never triaged.
func (s *Service) TriageFor(ctx context.Context, appointmentID uuid.UUID) (*Triage, error) {
	return s.triage.GetByAppointment(ctx, appointmentID)
}

// EntryFor returns the queue entry for an appointment, or nil when the
// appointment is not queued.
func (s *Service) EntryFor(ctx context.Context, appointmentID uuid.UUID) (*QueueEntry, error) {
	return s.queue.GetByAppointment(ctx, appointmentID)
}
