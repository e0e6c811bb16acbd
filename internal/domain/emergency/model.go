package emergency

import (
	"time"

	"github.com/google/uuid"
)

// Triage is the immutable emergency assessment recorded when an emergency
// appointment is booked.
type Triage struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	Symptoms      []string  `db:"symptoms" json:"symptoms"`
	Score         int       `db:"emergency_score" json:"emergency_score"`
	SeverityLevel Severity  `db:"severity_level" json:"severity_level"`
	PatientLat    *float64  `db:"patient_lat" json:"patient_lat,omitempty"`
	PatientLng    *float64  `db:"patient_lng" json:"patient_lng,omitempty"`
	DistanceKm    *float64  `db:"distance_km" json:"distance_km,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// QueueStatus is the review state of an emergency queue entry.
type QueueStatus string

const (
	QueuePending  QueueStatus = "pending"
	QueueApproved QueueStatus = "approved"
	QueueRejected QueueStatus = "rejected"
)

// QueueEntry is a doctor-review work item for an emergency appointment.
type QueueEntry struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	AppointmentID uuid.UUID   `db:"appointment_id" json:"appointment_id"`
	Status        QueueStatus `db:"status" json:"status"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}
