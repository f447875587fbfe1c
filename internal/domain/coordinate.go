package domain

import "fmt"

// Accepted coordinate ranges. Altitude bounds roughly cover the Dead Sea
// shore through the Kármán line.
const (
	MinLatitude = -90.0
	MaxLatitude = 90.0

	MinLongitude = -180.0
	MaxLongitude = 180.0

	MinAltitudeMeters = -500.0
	MaxAltitudeMeters = 100000.0
)

// Immutable geographic position (decimal degrees, altitude in meters).
type Coordinate struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// RawCoordinate is the boundary shape of a coordinate before normalization.
// Keys are "latitude", "longitude" and either "altitude" or "height";
// values may be JSON numbers or form-field strings.
type RawCoordinate map[string]any

// Validate collects every range violation for this coordinate.
// All checks run independently so callers can surface the complete list
// in one round trip; label names the point in each message.
func (c Coordinate) Validate(label string) []string {
	var violations []string

	if c.Latitude < MinLatitude || c.Latitude > MaxLatitude {
		violations = append(violations, fmt.Sprintf(
			"%s: latitude %v must be between %v and %v", label, c.Latitude, MinLatitude, MaxLatitude,
		))
	}

	if c.Longitude < MinLongitude || c.Longitude > MaxLongitude {
		violations = append(violations, fmt.Sprintf(
			"%s: longitude %v must be between %v and %v", label, c.Longitude, MinLongitude, MaxLongitude,
		))
	}

	if c.Altitude < MinAltitudeMeters {
		violations = append(violations, fmt.Sprintf(
			"%s: altitude %v is below the minimum of %v meters", label, c.Altitude, MinAltitudeMeters,
		))
	}

	if c.Altitude > MaxAltitudeMeters {
		violations = append(violations, fmt.Sprintf(
			"%s: altitude %v is above the maximum of %v meters", label, c.Altitude, MaxAltitudeMeters,
		))
	}

	return violations
}
