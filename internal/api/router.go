package api

import (
	"geodesic-distance-service/internal/api/handlers"
	"geodesic-distance-service/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns the gin
// engine. This is the API composition root (handlers stay unaware of the
// concrete solver). templatesGlob may be empty when only the JSON API is
// exercised, e.g. in tests.
func NewRouter(solver ports.GeodesicSolver, logger zerolog.Logger, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(logger), gin.Recovery())

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
	}

	pages := &handlers.PageHandler{Solver: solver}
	dist := &handlers.DistanceHandler{Solver: solver, Logger: logger}

	r.GET("/health", handlers.Health)

	if templatesGlob != "" {
		r.GET("/", pages.Index)
		r.POST("/", pages.Calculate)
	}

	apiGroup := r.Group("/api")
	apiGroup.POST("/distance", dist.Compute)

	return r
}
