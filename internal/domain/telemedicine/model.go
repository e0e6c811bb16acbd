package telemedicine

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the consultation wrote a message.
type Sender string

const (
	SenderDoctor  Sender = "doctor"
	SenderPatient Sender = "patient"
)

// Message is one chat message in a telemedicine consultation. Messages are
// append-only and ordered by creation time.
type Message struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	Sender        Sender    `db:"sender" json:"sender"`
	Message       string    `db:"message" json:"message"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
