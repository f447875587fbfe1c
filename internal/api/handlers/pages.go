package handlers

import (
	"errors"
	"net/http"

	"geodesic-distance-service/internal/domain"
	"geodesic-distance-service/internal/ports"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	Solver ports.GeodesicSolver
}

// Index renders the empty coordinate form.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Form": map[string]string{}})
}

// Calculate handles the form submission. Form fields arrive as strings and
// go through the same coercion path as JSON input; the page re-renders with
// either the report or the full validation list.
func (h *PageHandler) Calculate(c *gin.Context) {
	point1 := formCoordinate(c, "latitude1", "longitude1", "altitude1")
	point2 := formCoordinate(c, "latitude2", "longitude2", "altitude2")

	report, err := h.Solver.Solve(point1, point2)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.HTML(http.StatusUnprocessableEntity, "index.html", gin.H{
				"Errors": vErr.Messages,
				"Form":   formValues(c),
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Errors": []string{"internal server error"},
			"Form":   formValues(c),
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Report": report,
		"Form":   formValues(c),
	})
}

func formCoordinate(c *gin.Context, latField, lonField, altField string) domain.RawCoordinate {
	raw := domain.RawCoordinate{
		"latitude":  c.PostForm(latField),
		"longitude": c.PostForm(lonField),
	}
	// Omit the key entirely when the field is blank so the default applies.
	if alt := c.PostForm(altField); alt != "" {
		raw["altitude"] = alt
	}
	return raw
}

func formValues(c *gin.Context) map[string]string {
	fields := []string{"latitude1", "longitude1", "altitude1", "latitude2", "longitude2", "altitude2"}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f] = c.PostForm(f)
	}
	return values
}
