// Package geo provides the great-circle distance math behind the
// check-in/transit/check-out geofence.
package geo

import (
	"math"
)

const earthRadiusMeters = 6371000.0

// Distance returns the haversine great-circle distance in meters between
// two coordinates.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether the device coordinate falls inside the
// geofence around the target. The boundary is inclusive: a distance equal
// to the radius passes.
func WithinRadius(lat1, lng1, lat2, lng2, radiusMeters float64) bool {
	return Distance(lat1, lng1, lat2, lng2) <= radiusMeters
}
