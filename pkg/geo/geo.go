package geo

import "math"

// earthRadiusKm is the Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points given in degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// WithinKm reports whether the two points are at most radiusKm apart.
func WithinKm(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	if radiusKm <= 0 {
		return false
	}
	return DistanceKm(lat1, lng1, lat2, lng2) <= radiusKm
}
