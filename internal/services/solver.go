package services

import "geodesic-distance-service/internal/domain"

// GeodesicSolver validates two raw coordinate inputs and computes the
// geodesic distance and bearings between them. It is stateless; a single
// instance is safe for unlimited concurrent use.
type GeodesicSolver struct{}

func NewGeodesicSolver() *GeodesicSolver {
	return &GeodesicSolver{}
}

// Solve normalizes both inputs, collects every range violation, and on
// valid input computes the inverse geodesic solution, falling back to the
// spherical approximation when the ellipsoidal method does not converge.
//
// The only error it returns is *domain.ValidationError; any input that
// passes range validation is guaranteed a report.
func (s *GeodesicSolver) Solve(point1, point2 domain.RawCoordinate) (*domain.DistanceReport, error) {
	p1 := normalizeCoordinate(point1)
	p2 := normalizeCoordinate(point2)

	violations := p1.Validate("Point 1")
	violations = append(violations, p2.Validate("Point 2")...)
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Messages: violations}
	}

	sol, converged := solveInverse(p1, p2)
	if !converged {
		sol = solveSpherical(p1, p2)
	}

	return domain.NewDistanceReport(p1, p2, sol), nil
}
