package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table.
type Doctor struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	Name                  string    `db:"name" json:"name"`
	Specialty             string    `db:"specialty" json:"specialty"`
	Location              string    `db:"location" json:"location"`
	Latitude              *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude             *float64  `db:"longitude" json:"longitude,omitempty"`
	TelemedicineAvailable bool      `db:"telemedicine_available" json:"telemedicine_available"`
	Rating                *float64  `db:"rating" json:"rating,omitempty"`
	ExperienceYears       *int      `db:"experience_years" json:"experience_years,omitempty"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// WeeklyAvailability is one recurring working window for a doctor.
// DayOfWeek follows time.Weekday numbering: 0 is Sunday.
type WeeklyAvailability struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor_id"`
	DayOfWeek   int       `db:"day_of_week" json:"day_of_week"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
}

// Profile is a doctor together with their recurring availability rules.
type Profile struct {
	Doctor
	Availability []*WeeklyAvailability `json:"availability"`
}
