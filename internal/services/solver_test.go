package services

import (
	"errors"
	"math"
	"strings"
	"testing"

	"geodesic-distance-service/internal/domain"
)

func solve(t *testing.T, p1, p2 domain.RawCoordinate) *domain.DistanceReport {
	t.Helper()

	report, err := NewGeodesicSolver().Solve(p1, p2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return report
}

func rawPoint(lat, lon float64) domain.RawCoordinate {
	return domain.RawCoordinate{"latitude": lat, "longitude": lon}
}

func TestSolveNewYorkToLondon(t *testing.T) {
	report := solve(t, rawPoint(40.7128, -74.0060), rawPoint(51.5074, -0.1278))

	if math.Abs(report.SurfaceDistanceKm-5570) > 10 {
		t.Errorf("surface distance = %v km, want 5570 +/- 10", report.SurfaceDistanceKm)
	}
	if report.Method != domain.MethodEllipsoidal {
		t.Errorf("method = %v, want ellipsoidal", report.Method)
	}
	if report.InitialBearing < 0 || report.InitialBearing >= 360 {
		t.Errorf("initial bearing %v out of [0, 360)", report.InitialBearing)
	}
	if report.FinalBearing < 0 || report.FinalBearing >= 360 {
		t.Errorf("final bearing %v out of [0, 360)", report.FinalBearing)
	}
}

func TestSolveCoincidentPoints(t *testing.T) {
	report := solve(t, rawPoint(40.7128, -74.0060), rawPoint(40.7128, -74.0060))

	if report.SurfaceDistanceMeters != 0 {
		t.Errorf("surface distance = %v, want exactly 0", report.SurfaceDistanceMeters)
	}
	if report.InitialBearing != 0 || report.FinalBearing != 0 {
		t.Errorf("bearings = %v/%v, want 0/0", report.InitialBearing, report.FinalBearing)
	}
}

func TestSolvePoleToEquator(t *testing.T) {
	report := solve(t, rawPoint(90, 0), rawPoint(0, 0))

	// A quarter meridian.
	if math.Abs(report.SurfaceDistanceMeters-10001965.7) > 1000 {
		t.Errorf("surface distance = %v m, want ~10001965.7", report.SurfaceDistanceMeters)
	}
	if math.Abs(report.InitialBearing-180) > 1 {
		t.Errorf("initial bearing = %v, want 180 +/- 1", report.InitialBearing)
	}
}

func TestSolveEquatorialLine(t *testing.T) {
	report := solve(t, rawPoint(0, 10), rawPoint(0, 20))

	// A geodesic along the equator measures a*L exactly.
	want := 6378137.0 * 10 * math.Pi / 180
	if math.Abs(report.SurfaceDistanceMeters-want) > 0.01 {
		t.Errorf("surface distance = %v m, want %v", report.SurfaceDistanceMeters, want)
	}
	if math.Abs(report.InitialBearing-90) > 1e-6 {
		t.Errorf("initial bearing = %v, want 90", report.InitialBearing)
	}
}

func TestSolveNearAntipodalFallsBack(t *testing.T) {
	if _, converged := solveInverse(
		domain.Coordinate{Latitude: 0, Longitude: 0},
		domain.Coordinate{Latitude: 0, Longitude: 179.7},
	); converged {
		t.Fatal("expected the iterative method to exceed its iteration cap")
	}

	report := solve(t, rawPoint(0, 0), rawPoint(0, 179.7))

	if report.Method != domain.MethodSpherical {
		t.Errorf("method = %v, want spherical fallback", report.Method)
	}
	// Roughly half the Earth's circumference.
	if math.Abs(report.SurfaceDistanceKm-20003) > 100 {
		t.Errorf("surface distance = %v km, want 20003 +/- 100", report.SurfaceDistanceKm)
	}
	// The fallback approximates the final bearing as initial + 180.
	want := math.Mod(report.InitialBearing+180, 360)
	if math.Abs(report.FinalBearing-want) > 1e-9 {
		t.Errorf("final bearing = %v, want %v", report.FinalBearing, want)
	}
}

func TestSolveExactAntipodesFallsBack(t *testing.T) {
	if _, converged := solveInverse(
		domain.Coordinate{Latitude: 0, Longitude: 0},
		domain.Coordinate{Latitude: 0, Longitude: 180},
	); converged {
		t.Fatal("expected the iterative method to reject antipodal geometry")
	}

	report := solve(t, rawPoint(0, 0), rawPoint(0, 180))

	if report.Method != domain.MethodSpherical {
		t.Errorf("method = %v, want spherical fallback", report.Method)
	}
	// Half the Earth's circumference, not a zero-distance degenerate.
	if math.Abs(report.SurfaceDistanceKm-20003) > 100 {
		t.Errorf("surface distance = %v km, want 20003 +/- 100", report.SurfaceDistanceKm)
	}
}

func TestSolveSymmetry(t *testing.T) {
	forward := solve(t, rawPoint(40.7128, -74.0060), rawPoint(51.5074, -0.1278))
	reverse := solve(t, rawPoint(51.5074, -0.1278), rawPoint(40.7128, -74.0060))

	rel := math.Abs(forward.SurfaceDistanceMeters-reverse.SurfaceDistanceMeters) /
		forward.SurfaceDistanceMeters
	if rel > 1e-6 {
		t.Errorf("asymmetric distances: %v vs %v", forward.SurfaceDistanceMeters, reverse.SurfaceDistanceMeters)
	}

	// Bearings swap role: walking the geodesic backwards reverses each
	// heading by 180 degrees.
	if diff := math.Abs(math.Mod(forward.FinalBearing+180, 360) - reverse.InitialBearing); diff > 1e-6 {
		t.Errorf("forward final %v and reverse initial %v disagree", forward.FinalBearing, reverse.InitialBearing)
	}
	if diff := math.Abs(math.Mod(forward.InitialBearing+180, 360) - reverse.FinalBearing); diff > 1e-6 {
		t.Errorf("forward initial %v and reverse final %v disagree", forward.InitialBearing, reverse.FinalBearing)
	}
}

func TestSolveUnitConversionRoundTrips(t *testing.T) {
	report := solve(t, rawPoint(35.6762, 139.6503), rawPoint(37.5665, 126.9780))

	if report.SurfaceDistanceMeters < 0 {
		t.Fatalf("negative surface distance %v", report.SurfaceDistanceMeters)
	}

	m := report.SurfaceDistanceMeters
	checks := map[string]float64{
		"km":             report.SurfaceDistanceKm * 1000,
		"miles":          report.SurfaceDistanceMiles * 1609.344,
		"nautical miles": report.SurfaceDistanceNauticalMiles * 1852.0,
	}
	for unit, got := range checks {
		if math.Abs(got-m)/m > 1e-9 {
			t.Errorf("%s round trip = %v, want %v", unit, got, m)
		}
	}
}

func TestSolveAltitudeOnlyPair(t *testing.T) {
	p1 := domain.RawCoordinate{"latitude": 48.8566, "longitude": 2.3522, "altitude": 0.0}
	p2 := domain.RawCoordinate{"latitude": 48.8566, "longitude": 2.3522, "altitude": 1000.0}

	report := solve(t, p1, p2)

	if report.SurfaceDistanceMeters != 0 {
		t.Errorf("surface distance = %v, want 0", report.SurfaceDistanceMeters)
	}
	if math.Abs(report.TotalDistanceMeters-1000) > 1e-9 {
		t.Errorf("total distance = %v, want 1000", report.TotalDistanceMeters)
	}
	if report.AltitudeDifferenceMeters != 1000 {
		t.Errorf("altitude difference = %v, want 1000", report.AltitudeDifferenceMeters)
	}
}

func TestSolveValidationFailure(t *testing.T) {
	p1 := domain.RawCoordinate{"latitude": 95.0, "longitude": 200.0, "altitude": -600.0}
	p2 := domain.RawCoordinate{"latitude": 10.0, "longitude": 10.0, "altitude": 200000.0}

	_, err := NewGeodesicSolver().Solve(p1, p2)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *domain.ValidationError", err)
	}

	if len(vErr.Messages) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(vErr.Messages), vErr.Messages)
	}

	// Point 1 violations come first, in field order.
	for i, msg := range vErr.Messages[:3] {
		if !strings.HasPrefix(msg, "Point 1:") {
			t.Errorf("message %d = %q, want a Point 1 violation", i, msg)
		}
	}
	if !strings.HasPrefix(vErr.Messages[3], "Point 2:") {
		t.Errorf("last message = %q, want a Point 2 violation", vErr.Messages[3])
	}
}

func TestSolveSphericalFinalBearingApproximation(t *testing.T) {
	sol := solveSpherical(
		domain.Coordinate{Latitude: 10, Longitude: 20},
		domain.Coordinate{Latitude: 30, Longitude: 40},
	)

	want := math.Mod(sol.InitialBearing+180, 360)
	if sol.FinalBearing != want {
		t.Errorf("final bearing = %v, want initial+180 = %v", sol.FinalBearing, want)
	}
	if sol.Method != domain.MethodSpherical {
		t.Errorf("method = %v, want spherical", sol.Method)
	}
}
