package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/domain/doctor"
	"github.com/carebook/carebook/internal/domain/emergency"
	"github.com/carebook/carebook/internal/domain/prescription"
	"github.com/carebook/carebook/internal/domain/telemedicine"
)

// Type distinguishes routine bookings from emergency ones.
type Type string

const (
	TypeNormal    Type = "normal"
	TypeEmergency Type = "emergency"
)

// Mode is how the consultation takes place.
type Mode string

const (
	ModeClinic       Mode = "clinic"
	ModeTelemedicine Mode = "telemedicine"
)

// Status is the appointment lifecycle state. Completed and cancelled are
// terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment maps to the appointment table.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"appointment_date" json:"appointment_date"`
	TimeSlot  string    `db:"time_slot" json:"time_slot"`
	Type      Type      `db:"appointment_type" json:"appointment_type"`
	Mode      Mode      `db:"mode" json:"mode"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Detail is an appointment hydrated with its related records. The
// EmergencyScore and DistanceWarning fields are computed at booking time and
// never stored; EmergencyScore is set even when a low score downgraded the
// booking to a normal appointment.
type Detail struct {
	Appointment
	Doctor          *doctor.Doctor               `json:"doctor,omitempty"`
	Triage          *emergency.Triage            `json:"emergency_triage,omitempty"`
	Queue           *emergency.QueueEntry        `json:"emergency_queue,omitempty"`
	Prescriptions   []*prescription.Prescription `json:"prescriptions,omitempty"`
	Messages        []*telemedicine.Message      `json:"messages,omitempty"`
	EmergencyScore  *int                         `json:"emergency_score,omitempty"`
	DistanceWarning bool                         `json:"distance_warning,omitempty"`
}
