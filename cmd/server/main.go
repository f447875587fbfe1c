package main

import (
	"net/http"
	"os"
	"time"

	"geodesic-distance-service/internal/api"
	"geodesic-distance-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires the geodesic solver behind its port and starts the HTTP server.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	templatesGlob := getEnv("TEMPLATES_GLOB", "templates/*")

	gin.SetMode(gin.ReleaseMode)

	solver := services.NewGeodesicSolver()
	router := api.NewRouter(solver, logger, templatesGlob)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
