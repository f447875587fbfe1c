package domain

import (
	"strings"
	"testing"
)

func TestCoordinateValidateInRange(t *testing.T) {
	c := Coordinate{Latitude: 40.7128, Longitude: -74.0060, Altitude: 10}

	if got := c.Validate("Point 1"); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestCoordinateValidateBoundsAreInclusive(t *testing.T) {
	corners := []Coordinate{
		{Latitude: 90, Longitude: 180, Altitude: 100000},
		{Latitude: -90, Longitude: -180, Altitude: -500},
	}

	for _, c := range corners {
		if got := c.Validate("Point 1"); len(got) != 0 {
			t.Errorf("boundary coordinate %+v flagged: %v", c, got)
		}
	}
}

func TestCoordinateValidateCollectsAllViolations(t *testing.T) {
	c := Coordinate{Latitude: 95, Longitude: 200, Altitude: -600}

	got := c.Validate("Point 2")
	if len(got) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(got), got)
	}

	for _, msg := range got {
		if !strings.HasPrefix(msg, "Point 2:") {
			t.Errorf("message %q does not name its point", msg)
		}
	}

	if !strings.Contains(got[0], "latitude") {
		t.Errorf("first violation should be latitude, got %q", got[0])
	}
	if !strings.Contains(got[1], "longitude") {
		t.Errorf("second violation should be longitude, got %q", got[1])
	}
	if !strings.Contains(got[2], "altitude") {
		t.Errorf("third violation should be altitude, got %q", got[2])
	}
}

func TestCoordinateValidateAltitudeTooHigh(t *testing.T) {
	c := Coordinate{Altitude: 150000}

	got := c.Validate("Point 1")
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %v", got)
	}
	if !strings.Contains(got[0], "above the maximum") {
		t.Errorf("unexpected message %q", got[0])
	}
}
