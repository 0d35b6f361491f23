package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/controllers"
	"github.com/openshelf/library-backend/src/services"
)

func SetupMembershipRoutes(router *gin.Engine, service *services.MembershipService) {

	membershipController := controllers.NewMembershipController(service)

	membership := router.Group("/membership")
	{
		membership.GET("", membershipController.GetAllMemberships)
		membership.GET("/:id", membershipController.GetMembershipByID)
		membership.POST("", membershipController.CreateMembership)
		membership.PUT("/:id", membershipController.UpdateMembership)
		membership.DELETE("/:id", membershipController.DeleteMembership)
	}
}
