package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/services"
)

type HealthController struct {
	service *services.HealthService
}

func NewHealthController(service *services.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Liveness handles GET / and reports the store's current timestamp
func (c *HealthController) Liveness(ctx *gin.Context) {
	now, err := c.service.ServerTime()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"now": now})
}
