package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/controllers"
	"github.com/openshelf/library-backend/src/services"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {

	userController := controllers.NewUserController(service)

	users := router.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}
}
