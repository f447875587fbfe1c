package domain

import "math"

// Method identifies which algorithm produced a Solution.
type Method int

const (
	// MethodEllipsoidal is the iterative Vincenty-style inverse solution.
	MethodEllipsoidal Method = iota
	// MethodSpherical is the haversine approximation used when the
	// iterative method cannot converge.
	MethodSpherical
)

func (m Method) String() string {
	if m == MethodSpherical {
		return "spherical"
	}
	return "ellipsoidal"
}

// Solution is the outcome of an inverse geodesic computation: the surface
// distance along the geodesic and the compass bearings at both endpoints,
// each in [0, 360) degrees.
type Solution struct {
	SurfaceDistanceMeters float64
	InitialBearing        float64
	FinalBearing          float64
	Method                Method
}

// Fixed multiplicative unit conversions.
const (
	metersPerKilometer    = 1000.0
	metersPerMile         = 1609.344
	metersPerNauticalMile = 1852.0
)

// DistanceReport is the externally consumed result of a solve: the surface
// and altitude-adjusted total distances in four units, the signed altitude
// difference, both bearings and an echo of the normalized inputs.
type DistanceReport struct {
	SurfaceDistanceMeters        float64
	SurfaceDistanceKm            float64
	SurfaceDistanceMiles         float64
	SurfaceDistanceNauticalMiles float64

	TotalDistanceMeters        float64
	TotalDistanceKm            float64
	TotalDistanceMiles         float64
	TotalDistanceNauticalMiles float64

	AltitudeDifferenceMeters float64

	InitialBearing float64
	FinalBearing   float64

	Method Method

	Point1 Coordinate
	Point2 Coordinate
}

// NewDistanceReport derives the full report from a solution and the two
// normalized coordinates. The total distance treats the altitude offset as
// orthogonal to the surface path, a straight-line correction that holds when
// the altitude difference is small relative to the surface distance.
// No rounding happens here; presentation is the caller's concern.
func NewDistanceReport(point1, point2 Coordinate, sol Solution) *DistanceReport {
	surface := sol.SurfaceDistanceMeters
	altDiff := point2.Altitude - point1.Altitude

	// Keep total bit-identical to surface when there is nothing to adjust.
	total := surface
	if altDiff != 0 {
		total = math.Sqrt(surface*surface + altDiff*altDiff)
	}

	return &DistanceReport{
		SurfaceDistanceMeters:        surface,
		SurfaceDistanceKm:            surface / metersPerKilometer,
		SurfaceDistanceMiles:         surface / metersPerMile,
		SurfaceDistanceNauticalMiles: surface / metersPerNauticalMile,

		TotalDistanceMeters:        total,
		TotalDistanceKm:            total / metersPerKilometer,
		TotalDistanceMiles:         total / metersPerMile,
		TotalDistanceNauticalMiles: total / metersPerNauticalMile,

		AltitudeDifferenceMeters: altDiff,

		InitialBearing: sol.InitialBearing,
		FinalBearing:   sol.FinalBearing,

		Method: sol.Method,

		Point1: point1,
		Point2: point2,
	}
}
