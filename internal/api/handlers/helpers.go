package handlers

import (
	"geodesic-distance-service/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, messages []string) {
	c.JSON(status, dto.NewErrorResponse(messages))
}
