package ports

import "geodesic-distance-service/internal/domain"

// Port: the single operation the core exposes to its callers.
type GeodesicSolver interface {
	// Solve two raw coordinate inputs into a distance report. The error
	// is *domain.ValidationError when either input is out of range.
	Solve(point1, point2 domain.RawCoordinate) (*domain.DistanceReport, error)
}
