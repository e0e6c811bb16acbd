package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/domain/doctor"
	"github.com/carebook/carebook/internal/domain/emergency"
	"github.com/carebook/carebook/internal/domain/prescription"
	"github.com/carebook/carebook/internal/domain/telemedicine"
	"github.com/carebook/carebook/internal/platform/db"
	"github.com/carebook/carebook/internal/platform/slotlock"
)

// ErrValidation is returned for malformed booking requests.
var ErrValidation = errors.New("invalid appointment request")

// DoctorSource is the slice of the doctor store this package needs.
type DoctorSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

// CreateParams carries a booking request.
type CreateParams struct {
	PatientID  string
	DoctorID   uuid.UUID
	Date       time.Time
	TimeSlot   string
	Type       Type
	Mode       Mode
	Symptoms   []string
	PatientLat *float64
	PatientLng *float64
}

func (p *CreateParams) validate() error {
	if p.PatientID == "" {
		return fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	if p.DoctorID == uuid.Nil {
		return fmt.Errorf("%w: doctor_id is required", ErrValidation)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: appointment_date is required", ErrValidation)
	}
	if _, err := time.Parse("15:04", p.TimeSlot); err != nil {
		return fmt.Errorf("%w: time_slot must be HH:MM", ErrValidation)
	}
	if p.Type == "" {
		p.Type = TypeNormal
	}
	if p.Type != TypeNormal && p.Type != TypeEmergency {
		return fmt.Errorf("%w: unknown appointment type %q", ErrValidation, p.Type)
	}
	if p.Mode == "" {
		p.Mode = ModeClinic
	}
	if p.Mode != ModeClinic && p.Mode != ModeTelemedicine {
		return fmt.Errorf("%w: unknown mode %q", ErrValidation, p.Mode)
	}
	return nil
}

type Service struct {
	repo          Repository
	doctors       DoctorSource
	triage        emergency.TriageRepository
	queue         emergency.QueueRepository
	prescriptions prescription.Repository
	messages      telemedicine.Repository
	tx            db.TxRunner
	locker        slotlock.Locker
}

func NewService(
	repo Repository,
	doctors DoctorSource,
	triage emergency.TriageRepository,
	queue emergency.QueueRepository,
	prescriptions prescription.Repository,
	messages telemedicine.Repository,
	tx db.TxRunner,
	locker slotlock.Locker,
) *Service {
	return &Service{
		repo:          repo,
		doctors:       doctors,
		triage:        triage,
		queue:         queue,
		prescriptions: prescriptions,
		messages:      messages,
		tx:            tx,
		locker:        locker,
	}
}

// Create books an appointment. Emergency bookings with symptoms are scored:
// a score of 2 or less books as a normal appointment with no triage record,
// anything higher persists a triage and queues the case for doctor review,
// pre-approved when the severity is high. The appointment, triage and queue
// rows are written in one transaction under a per-slot lock.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Detail, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	doc, err := s.doctors.GetByID(ctx, p.DoctorID)
	if err != nil {
		return nil, err
	}

	apptType := p.Type
	var tri *emergency.Triage
	var computedScore *int
	distanceWarning := false

	if p.Type == TypeEmergency && len(p.Symptoms) > 0 {
		score := emergency.Score(p.Symptoms)
		computedScore = &score
		if emergency.ShouldConvertToNormal(score) {
			apptType = TypeNormal
		} else {
			tri = &emergency.Triage{
				Symptoms:      p.Symptoms,
				Score:         score,
				SeverityLevel: emergency.SeverityLevel(score),
				PatientLat:    p.PatientLat,
				PatientLng:    p.PatientLng,
			}
			if p.PatientLat != nil && p.PatientLng != nil && doc.Latitude != nil && doc.Longitude != nil {
				d := emergency.DistanceKm(*p.PatientLat, *p.PatientLng, *doc.Latitude, *doc.Longitude)
				tri.DistanceKm = &d
				distanceWarning = emergency.ShouldWarnDistance(d, score)
			}
		}
	}

	appt := &Appointment{
		PatientID: p.PatientID,
		DoctorID:  p.DoctorID,
		Date:      p.Date,
		TimeSlot:  p.TimeSlot,
		Type:      apptType,
		Mode:      p.Mode,
		Status:    StatusScheduled,
	}
	var entry *emergency.QueueEntry

	key := slotlock.Key(p.DoctorID, p.Date.Format("2006-01-02"), p.TimeSlot)
	err = s.locker.WithLock(ctx, key, func(ctx context.Context) error {
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			conflict, err := s.repo.FindConflict(ctx, p.DoctorID, p.Date, p.TimeSlot, uuid.Nil)
			if err != nil {
				return fmt.Errorf("check slot: %w", err)
			}
			if conflict != nil {
				return ErrSlotConflict
			}

			if err := s.repo.Create(ctx, appt); err != nil {
				return err
			}

			if tri == nil {
				return nil
			}
			tri.AppointmentID = appt.ID
			if err := s.triage.Create(ctx, tri); err != nil {
				return fmt.Errorf("save triage: %w", err)
			}

			status := emergency.QueuePending
			if tri.SeverityLevel == emergency.SeverityHigh {
				status = emergency.QueueApproved
			}
			entry = &emergency.QueueEntry{AppointmentID: appt.ID, Status: status}
			if err := s.queue.Create(ctx, entry); err != nil {
				return fmt.Errorf("enqueue emergency: %w", err)
			}
			return nil
		})
	})
	if errors.Is(err, slotlock.ErrNotAcquired) {
		// Another request holds the slot; to the caller that is a conflict.
		return nil, ErrSlotConflict
	}
	if err != nil {
		return nil, err
	}

	return &Detail{
		Appointment:     *appt,
		Doctor:          doc,
		Triage:          tri,
		Queue:           entry,
		EmergencyScore:  computedScore,
		DistanceWarning: distanceWarning,
	}, nil
}

// Reschedule moves a scheduled appointment to a new date and slot.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, slot string) (*Detail, error) {
	if _, err := time.Parse("15:04", slot); err != nil {
		return nil, fmt.Errorf("%w: time_slot must be HH:MM", ErrValidation)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case StatusCancelled:
		return nil, fmt.Errorf("cannot reschedule a cancelled appointment: %w", ErrInvalidState)
	case StatusCompleted:
		return nil, fmt.Errorf("cannot reschedule a completed appointment: %w", ErrInvalidState)
	}

	key := slotlock.Key(appt.DoctorID, date.Format("2006-01-02"), slot)
	err = s.locker.WithLock(ctx, key, func(ctx context.Context) error {
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			conflict, err := s.repo.FindConflict(ctx, appt.DoctorID, date, slot, id)
			if err != nil {
				return fmt.Errorf("check slot: %w", err)
			}
			if conflict != nil {
				return ErrSlotConflict
			}
			return s.repo.UpdateSchedule(ctx, id, date, slot)
		})
	})
	if errors.Is(err, slotlock.ErrNotAcquired) {
		return nil, ErrSlotConflict
	}
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Cancel soft-cancels an appointment; the row is kept for history and its
// slot becomes bookable again.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusCompleted:
		return nil, fmt.Errorf("cannot cancel a completed appointment: %w", ErrInvalidState)
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	appt.Status = StatusCancelled
	return appt, nil
}

// Complete marks an appointment as completed. Completing an appointment
// that is already completed is a no-op.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case StatusCancelled:
		return nil, fmt.Errorf("cannot complete a cancelled appointment: %w", ErrInvalidState)
	case StatusCompleted:
		return appt, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}
	appt.Status = StatusCompleted
	return appt, nil
}

// GetByID returns the appointment hydrated with doctor, triage, queue,
// prescriptions and chat messages.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, appt, true)
}

// ListByPatient returns a patient's appointments, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Detail, int, error) {
	items, total, err := s.repo.ListByPatient(ctx, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.hydrateAll(ctx, items, total)
}

// ListByDoctor returns a doctor's appointments, newest first.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Detail, int, error) {
	items, total, err := s.repo.ListByDoctor(ctx, doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.hydrateAll(ctx, items, total)
}

func (s *Service) hydrateAll(ctx context.Context, items []*Appointment, total int) ([]*Detail, int, error) {
	details := make([]*Detail, 0, len(items))
	for _, appt := range items {
		d, err := s.hydrate(ctx, appt, false)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}

func (s *Service) hydrate(ctx context.Context, appt *Appointment, withMessages bool) (*Detail, error) {
	d := &Detail{Appointment: *appt}

	doc, err := s.doctors.GetByID(ctx, appt.DoctorID)
	if err != nil && !errors.Is(err, doctor.ErrNotFound) {
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	d.Doctor = doc

	if d.Triage, err = s.triage.GetByAppointment(ctx, appt.ID); err != nil {
		return nil, fmt.Errorf("load triage: %w", err)
	}
	if d.Queue, err = s.queue.GetByAppointment(ctx, appt.ID); err != nil {
		return nil, fmt.Errorf("load queue entry: %w", err)
	}
	if d.Prescriptions, err = s.prescriptions.ListByAppointment(ctx, appt.ID); err != nil {
		return nil, fmt.Errorf("load prescriptions: %w", err)
	}
	if withMessages {
		if d.Messages, err = s.messages.ListByAppointment(ctx, appt.ID); err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}
	return d, nil
}
