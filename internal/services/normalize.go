package services

import (
	"encoding/json"
	"geodesic-distance-service/internal/domain"
	"math"
	"strconv"
	"strings"
)

// normalizeCoordinate turns a raw boundary mapping into a Coordinate.
// Non-numeric or absent latitude/longitude coerce to 0.0. Altitude may
// arrive under "altitude" or "height"; "altitude" wins when both are
// present, and the default is 0 when neither is.
func normalizeCoordinate(raw domain.RawCoordinate) domain.Coordinate {
	c := domain.Coordinate{
		Latitude:  coerceFloat(raw["latitude"]),
		Longitude: coerceFloat(raw["longitude"]),
	}

	if v, ok := raw["altitude"]; ok {
		c.Altitude = coerceFloat(v)
	} else if v, ok := raw["height"]; ok {
		c.Altitude = coerceFloat(v)
	}

	return c
}

// coerceFloat converts JSON numbers and form-field strings to float64.
// Anything unparseable (and non-finite string input) coerces to 0.
func coerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return 0
}
