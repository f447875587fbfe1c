package dto

import "geodesic-distance-service/internal/domain"

// DistanceRequest is the JSON API input: two raw coordinate mappings.
// Values are left untyped so numeric coercion happens in one place,
// shared with the form handler.
type DistanceRequest struct {
	Point1 map[string]any `json:"point1" binding:"required"`
	Point2 map[string]any `json:"point2" binding:"required"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// DistanceResponse is the wire shape of a successful solve.
type DistanceResponse struct {
	Success bool `json:"success"`

	SurfaceDistance              float64 `json:"surface_distance"`
	SurfaceDistanceKm            float64 `json:"surface_distance_km"`
	SurfaceDistanceMiles         float64 `json:"surface_distance_miles"`
	SurfaceDistanceNauticalMiles float64 `json:"surface_distance_nautical_miles"`

	TotalDistance      float64 `json:"total_distance"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalDistanceMiles float64 `json:"total_distance_miles"`

	AltitudeDifference float64 `json:"altitude_difference"`

	InitialBearing float64 `json:"initial_bearing"`
	FinalBearing   float64 `json:"final_bearing"`

	Point1 CoordinateResponse `json:"point1"`
	Point2 CoordinateResponse `json:"point2"`
}

// ErrorResponse batches every validation message, Point 1 first.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func NewErrorResponse(messages []string) ErrorResponse {
	return ErrorResponse{Success: false, Errors: messages}
}

func NewDistanceResponse(report *domain.DistanceReport) DistanceResponse {
	return DistanceResponse{
		Success: true,

		SurfaceDistance:              report.SurfaceDistanceMeters,
		SurfaceDistanceKm:            report.SurfaceDistanceKm,
		SurfaceDistanceMiles:         report.SurfaceDistanceMiles,
		SurfaceDistanceNauticalMiles: report.SurfaceDistanceNauticalMiles,

		TotalDistance:      report.TotalDistanceMeters,
		TotalDistanceKm:    report.TotalDistanceKm,
		TotalDistanceMiles: report.TotalDistanceMiles,

		AltitudeDifference: report.AltitudeDifferenceMeters,

		InitialBearing: report.InitialBearing,
		FinalBearing:   report.FinalBearing,

		Point1: coordinateResponse(report.Point1),
		Point2: coordinateResponse(report.Point2),
	}
}

func coordinateResponse(c domain.Coordinate) CoordinateResponse {
	return CoordinateResponse{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Altitude:  c.Altitude,
	}
}
