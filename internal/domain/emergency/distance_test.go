package emergency

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	if got := DistanceKm(19.076, 72.8777, 19.076, 72.8777); got != 0 {
		t.Errorf("expected 0 for identical coordinates, got %f", got)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Mumbai to Pune is roughly 120 km great-circle.
	got := DistanceKm(19.076, 72.8777, 18.5204, 73.8567)
	if got < 115 || got > 125 {
		t.Errorf("expected Mumbai-Pune distance near 120 km, got %f", got)
	}
}

func TestDistanceKm_RoundedToTwoDecimals(t *testing.T) {
	got := DistanceKm(19.076, 72.8777, 18.5204, 73.8567)
	rounded := math.Round(got*100) / 100
	if got != rounded {
		t.Errorf("expected two-decimal rounding, got %v", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(19.076, 72.8777, 28.7041, 77.1025)
	b := DistanceKm(28.7041, 77.1025, 19.076, 72.8777)
	if a != b {
		t.Errorf("expected symmetric distance, got %f and %f", a, b)
	}
}

func TestShouldWarnDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		score    int
		want     bool
	}{
		{"far and severe", 25, 6, true},
		{"far but mild", 25, 5, false},
		{"near and severe", 10, 9, false},
		{"boundary distance", 20, 6, false},
		{"just over boundary", 20.01, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldWarnDistance(tt.distance, tt.score); got != tt.want {
				t.Errorf("ShouldWarnDistance(%v, %d) = %v, want %v", tt.distance, tt.score, got, tt.want)
			}
		})
	}
}
