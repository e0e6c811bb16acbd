package emergency

import "strings"

// Severity buckets an emergency score.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// symptomWeights is the fixed triage weight table. Symptoms are matched
// case-insensitively after trimming; anything not listed scores zero.
var symptomWeights = map[string]int{
	"chest pain":            3,
	"difficulty breathing":  3,
	"heavy bleeding":        3,
	"loss of consciousness": 3,
	"vomiting blood":        3,
	"accident/trauma":       2,
	"high fever":            2,
	"severe headache":       1,
}

// Score sums the weights of the distinct known symptoms. A symptom listed
// twice counts once.
func Score(symptoms []string) int {
	seen := make(map[string]bool)
	score := 0
	for _, raw := range symptoms {
		symptom := strings.ToLower(strings.TrimSpace(raw))
		weight, known := symptomWeights[symptom]
		if !known || seen[symptom] {
			continue
		}
		seen[symptom] = true
		score += weight
	}
	return score
}

// SeverityLevel buckets a score: 6 and above is high, 3 to 5 is medium,
// everything below is low.
func SeverityLevel(score int) Severity {
	switch {
	case score >= 6:
		return SeverityHigh
	case score >= 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ShouldConvertToNormal reports whether the score is too low to book the
// appointment as an emergency.
func ShouldConvertToNormal(score int) bool {
	return score <= 2
}
