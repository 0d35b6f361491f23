package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/controllers"
	"github.com/openshelf/library-backend/src/services"
)

func SetupHealthRoutes(router *gin.Engine, service *services.HealthService) {
	healthController := controllers.NewHealthController(service)

	router.GET("/", healthController.Liveness)
}
