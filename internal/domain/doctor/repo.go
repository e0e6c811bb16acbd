package doctor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no doctor exists for the given id.
var ErrNotFound = errors.New("doctor not found")

// Filter narrows a doctor directory listing.
type Filter struct {
	Specialty    string
	Location     string
	Telemedicine *bool
	Search       string // substring match on name, specialty or location
	SortBy       string // "rating" or "experience"
}

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]*Doctor, int, error)
	CreateAvailability(ctx context.Context, a *WeeklyAvailability) error
	AvailabilityByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*WeeklyAvailability, error)
}

// BookedSlotSource reports the time slots already taken for a doctor on a
// given date. The appointment store implements it; a narrow interface here
// keeps this package independent of the appointment package.
type BookedSlotSource interface {
	BookedSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
}
