package emergency

import "math"

const (
	earthRadiusKm = 6371

	// warnDistanceKm is the distance beyond which a high-severity patient
	// is warned that the clinic may be too far for an emergency visit.
	warnDistanceKm = 20
)

// DistanceKm computes the haversine great-circle distance between two
// coordinate pairs, rounded to two decimals.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	d := earthRadiusKm * c
	return math.Round(d*100) / 100
}

// ShouldWarnDistance reports whether the patient should be warned about the
// travel distance: only high-severity cases more than 20 km away.
func ShouldWarnDistance(distanceKm float64, score int) bool {
	return distanceKm > warnDistanceKm && score >= 6
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
