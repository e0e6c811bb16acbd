package main

import (
	"context"
	"fmt"
	"math"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/carebook/carebook/internal/domain/doctor"
)

var specialties = []string{
	"Cardiology", "Dermatology", "General Medicine", "Neurology",
	"Orthopedics", "Pediatrics", "Psychiatry", "Gynecology", "ENT",
}

// seedDoctors inserts count fake doctors, each with a Monday-to-Friday
// availability grid, and returns how many were created.
func seedDoctors(ctx context.Context, repo doctor.Repository, count int) (int, error) {
	for i := 0; i < count; i++ {
		lat := round4(gofakeit.Float64Range(8.0, 33.0))
		lng := round4(gofakeit.Float64Range(68.0, 92.0))
		rating := round4(gofakeit.Float64Range(2.5, 5.0))
		exp := gofakeit.Number(1, 35)

		d := &doctor.Doctor{
			Name:                  "Dr. " + gofakeit.Name(),
			Specialty:             gofakeit.RandomString(specialties),
			Location:              gofakeit.City(),
			Latitude:              &lat,
			Longitude:             &lng,
			TelemedicineAvailable: gofakeit.Bool(),
			Rating:                &rating,
			ExperienceYears:       &exp,
		}
		if err := repo.Create(ctx, d); err != nil {
			return i, fmt.Errorf("create doctor: %w", err)
		}

		for day := 1; day <= 5; day++ {
			rule := &doctor.WeeklyAvailability{
				DoctorID:    d.ID,
				DayOfWeek:   day,
				StartTime:   "09:00",
				EndTime:     "17:00",
				IsAvailable: true,
			}
			if err := repo.CreateAvailability(ctx, rule); err != nil {
				return i, fmt.Errorf("create availability: %w", err)
			}
		}
	}
	return count, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
