package services

import (
	"geodesic-distance-service/internal/domain"
	"math"
)

// solveSpherical is the closed-form haversine approximation on a mean-radius
// sphere. It is the designed degradation path for geometries where the
// ellipsoidal series diverges; it always produces an answer.
//
// The final bearing is approximated as the initial bearing plus 180 degrees.
// That is only exact for great-circle symmetric cases, but existing callers
// depend on the observed behavior, so it stays.
func solveSpherical(point1, point2 domain.Coordinate) domain.Solution {
	lat1 := toRadians(point1.Latitude)
	lat2 := toRadians(point2.Latitude)
	dLat := toRadians(point2.Latitude - point1.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	centralAngle := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	initial := normalizeBearing(toDegrees(math.Atan2(y, x)))

	return domain.Solution{
		SurfaceDistanceMeters: meanEarthRadiusMeters * centralAngle,
		InitialBearing:        initial,
		FinalBearing:          math.Mod(initial+180, 360),
		Method:                domain.MethodSpherical,
	}
}
