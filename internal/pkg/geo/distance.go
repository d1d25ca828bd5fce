package geo

import "math"

// DistanceMeters returns the great-circle distance between two points using
// the haversine formula.
func DistanceMeters(a, b Location) float64 {
	const earthRadius = 6371000

	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLon := (b.Lng - a.Lng) * (math.Pi / 180.0)

	lat1Rad := a.Lat * (math.Pi / 180.0)
	lat2Rad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
