package handlers

import (
	"errors"
	"net/http"

	"geodesic-distance-service/internal/api/dto"
	"geodesic-distance-service/internal/domain"
	"geodesic-distance-service/internal/platform/obs"
	"geodesic-distance-service/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type DistanceHandler struct {
	Solver ports.GeodesicSolver
	Logger zerolog.Logger
}

// Compute handles the JSON API: two raw coordinates in, a distance report
// out. Validation failures come back as a complete, ordered message list
// with 422 so the caller can correct everything in one round trip.
func (h *DistanceHandler) Compute(c *gin.Context) {
	var err error
	defer obs.Time(c.Request.Context(), h.Logger, "distance.compute")(&err)

	var req dto.DistanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		err = bindErr
		respondError(c, http.StatusBadRequest, []string{"request body must be a JSON object with point1 and point2"})
		return
	}

	report, err := h.Solver.Solve(domain.RawCoordinate(req.Point1), domain.RawCoordinate(req.Point2))
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			respondError(c, http.StatusUnprocessableEntity, vErr.Messages)
			return
		}
		respondError(c, http.StatusInternalServerError, []string{"internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewDistanceResponse(report))
}
