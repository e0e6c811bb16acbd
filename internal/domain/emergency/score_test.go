package emergency

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []string
		want     int
	}{
		{"no symptoms", nil, 0},
		{"empty list", []string{}, 0},
		{"single high weight", []string{"chest pain"}, 3},
		{"chest pain plus fever", []string{"chest pain", "high fever"}, 5},
		{"duplicate counted once", []string{"chest pain", "chest pain"}, 3},
		{"unknown ignored", []string{"sore toe"}, 0},
		{"unknown mixed with known", []string{"sore toe", "severe headache"}, 1},
		{"case and whitespace insensitive", []string{"  Chest Pain ", "HIGH FEVER"}, 5},
		{"trauma", []string{"accident/trauma"}, 2},
		{"all three-weight symptoms", []string{"chest pain", "difficulty breathing", "heavy bleeding", "loss of consciousness", "vomiting blood"}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.symptoms); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.symptoms, got, tt.want)
			}
		})
	}
}

func TestSeverityLevel(t *testing.T) {
	tests := []struct {
		score int
		want  Severity
	}{
		{0, SeverityLow},
		{2, SeverityLow},
		{3, SeverityMedium},
		{5, SeverityMedium},
		{6, SeverityHigh},
		{15, SeverityHigh},
	}
	for _, tt := range tests {
		if got := SeverityLevel(tt.score); got != tt.want {
			t.Errorf("SeverityLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestShouldConvertToNormal(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{6, false},
	}
	for _, tt := range tests {
		if got := ShouldConvertToNormal(tt.score); got != tt.want {
			t.Errorf("ShouldConvertToNormal(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
