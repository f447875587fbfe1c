package services

import (
	"geodesic-distance-service/internal/domain"
	"math"
)

// WGS-84 reference ellipsoid and the numerical limits of the inverse
// solver. These are physical and numerical facts, not configuration.
const (
	semiMajorAxisMeters = 6378137.0
	semiMinorAxisMeters = 6356752.314245
	flattening          = 1 / 298.257223563

	// Mean Earth radius used by the spherical fallback.
	meanEarthRadiusMeters = 6371008.8

	// convergenceThreshold bounds both the change in lambda between
	// successive iterations and the degenerate-geometry guards.
	convergenceThreshold = 1e-12
	maxIterations        = 200
)

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// normalizeBearing maps an atan2-derived angle in degrees into [0, 360).
func normalizeBearing(deg float64) float64 {
	return math.Mod(deg+360, 360)
}

// solveInverse computes the surface distance and endpoint bearings between
// two points on the WGS-84 ellipsoid using Vincenty's iterative inverse
// method. The second return value reports convergence: false means the
// series gave no usable answer, either because sin sigma vanished for a
// non-coincident (antipodal) pair or because lambda did not settle within
// maxIterations (near-antipodal geometry); the caller should fall back to
// the spherical method in both cases.
//
// Coincident points short-circuit to a zero-distance solution before the
// terms that would divide by zero are evaluated.
func solveInverse(point1, point2 domain.Coordinate) (domain.Solution, bool) {
	lat1 := toRadians(point1.Latitude)
	lon1 := toRadians(point1.Longitude)
	lat2 := toRadians(point2.Latitude)
	lon2 := toRadians(point2.Longitude)

	// Coincident points: skip iteration entirely.
	if math.Abs(lat2-lat1) < convergenceThreshold && math.Abs(lon2-lon1) < convergenceThreshold {
		return domain.Solution{Method: domain.MethodEllipsoidal}, true
	}

	// Reduced latitudes on the auxiliary sphere.
	u1 := math.Atan((1 - flattening) * math.Tan(lat1))
	u2 := math.Atan((1 - flattening) * math.Tan(lat2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	rawLonDiff := lon2 - lon1
	lambda := rawLonDiff

	var (
		sinLambda, cosLambda           float64
		sinSigma, cosSigma, sigma      float64
		sinAlpha, cosSqAlpha, cos2SigM float64
	)

	converged := false
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda = math.Sincos(lambda)

		sinSigma = math.Sqrt(
			(cosU2*sinLambda)*(cosU2*sinLambda) +
				(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda),
		)
		// A vanishing sin sigma here means antipodal geometry (the
		// coincident case never reaches the loop). The series has no
		// usable answer, so hand the pair to the spherical fallback
		// rather than divide by zero.
		if math.Abs(sinSigma) < convergenceThreshold {
			return domain.Solution{}, false
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		// Equatorial line: cosSqAlpha vanishes, so force the
		// mid-latitude term instead of dividing by it.
		if math.Abs(cosSqAlpha) < convergenceThreshold {
			cos2SigM = 0
		} else {
			cos2SigM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))

		prev := lambda
		lambda = rawLonDiff + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigM+c*cosSigma*(-1+2*cos2SigM*cos2SigM)))

		if math.Abs(lambda-prev) < convergenceThreshold {
			converged = true
			break
		}
	}

	if !converged {
		return domain.Solution{}, false
	}

	uSq := cosSqAlpha * (semiMajorAxisMeters*semiMajorAxisMeters - semiMinorAxisMeters*semiMinorAxisMeters) /
		(semiMinorAxisMeters * semiMinorAxisMeters)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	deltaSigma := b * sinSigma * (cos2SigM + b/4*
		(cosSigma*(-1+2*cos2SigM*cos2SigM)-
			b/6*cos2SigM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigM*cos2SigM)))

	distance := semiMinorAxisMeters * a * (sigma - deltaSigma)

	initial := toDegrees(math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda))
	final := toDegrees(math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda))

	return domain.Solution{
		SurfaceDistanceMeters: distance,
		InitialBearing:        normalizeBearing(initial),
		FinalBearing:          normalizeBearing(final),
		Method:                domain.MethodEllipsoidal,
	}, true
}
