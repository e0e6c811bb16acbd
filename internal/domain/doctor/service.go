package doctor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// SlotMinutes is the fixed length of a bookable slot.
const SlotMinutes = 30

type Service struct {
	repo   Repository
	booked BookedSlotSource
}

func NewService(repo Repository, booked BookedSlotSource) *Service {
	return &Service{repo: repo, booked: booked}
}

func (s *Service) List(ctx context.Context, f Filter, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

// GetProfile returns a doctor with their recurring availability rules.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rules, err := s.repo.AvailabilityByDoctor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if rules == nil {
		rules = []*WeeklyAvailability{}
	}
	return &Profile{Doctor: *d, Availability: rules}, nil
}

// AvailableSlots expands the doctor's recurring rules for the date's weekday
// into 30-minute slots and removes the ones already booked. Overlapping rules
// are unioned; the result is sorted and never nil.
func (s *Service) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	rules, err := s.repo.AvailabilityByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}

	weekday := int(date.Weekday())
	slotSet := make(map[string]struct{})
	for _, rule := range rules {
		if rule.DayOfWeek != weekday || !rule.IsAvailable {
			continue
		}
		start, err := parseClock(rule.StartTime)
		if err != nil {
			return nil, fmt.Errorf("availability rule %s: %w", rule.ID, err)
		}
		end, err := parseClock(rule.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability rule %s: %w", rule.ID, err)
		}
		for t := start; t < end; t += SlotMinutes {
			slotSet[formatClock(t)] = struct{}{}
		}
	}

	booked, err := s.booked.BookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("load booked slots: %w", err)
	}
	for _, slot := range booked {
		delete(slotSet, slot)
	}

	slots := make([]string, 0, len(slotSet))
	for slot := range slotSet {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", v, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes since midnight to zero-padded "HH:MM".
func formatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
