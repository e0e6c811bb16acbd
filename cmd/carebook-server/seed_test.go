package main

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/domain/doctor"
)

type fakeDoctorRepo struct {
	doctors []*doctor.Doctor
	rules   []*doctor.WeeklyAvailability
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *doctor.Doctor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.doctors = append(f.doctors, d)
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	return nil, doctor.ErrNotFound
}

func (f *fakeDoctorRepo) List(_ context.Context, _ doctor.Filter, _, _ int) ([]*doctor.Doctor, int, error) {
	return f.doctors, len(f.doctors), nil
}

func (f *fakeDoctorRepo) CreateAvailability(_ context.Context, a *doctor.WeeklyAvailability) error {
	f.rules = append(f.rules, a)
	return nil
}

func (f *fakeDoctorRepo) AvailabilityByDoctor(_ context.Context, _ uuid.UUID) ([]*doctor.WeeklyAvailability, error) {
	return f.rules, nil
}

func TestSeedDoctors(t *testing.T) {
	repo := &fakeDoctorRepo{}

	n, err := seedDoctors(context.Background(), repo, 3)
	if err != nil {
		t.Fatalf("seedDoctors: %v", err)
	}
	if n != 3 || len(repo.doctors) != 3 {
		t.Errorf("created %d doctors, want 3", len(repo.doctors))
	}
	// Five weekday rules per doctor.
	if len(repo.rules) != 15 {
		t.Errorf("created %d availability rules, want 15", len(repo.rules))
	}

	for _, d := range repo.doctors {
		if d.Latitude == nil || d.Longitude == nil {
			t.Error("seeded doctor missing coordinates")
		}
		if d.Specialty == "" || d.Name == "" {
			t.Error("seeded doctor missing name or specialty")
		}
	}
	for _, r := range repo.rules {
		if r.DayOfWeek < 1 || r.DayOfWeek > 5 {
			t.Errorf("rule day %d outside Monday-Friday", r.DayOfWeek)
		}
		if !r.IsAvailable {
			t.Error("seeded rule must be enabled")
		}
	}
}
