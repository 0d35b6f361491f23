package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/controllers"
	"github.com/openshelf/library-backend/src/services"
)

func SetupRequestedBookRoutes(router *gin.Engine, service *services.RequestedBookService) {

	requestedBookController := controllers.NewRequestedBookController(service)

	requests := router.Group("/request_books")
	{
		requests.GET("", requestedBookController.GetAllRequestedBooks)
		requests.GET("/:id", requestedBookController.GetRequestedBookByID)
		requests.POST("", requestedBookController.CreateRequestedBook)
		requests.PUT("/:id", requestedBookController.UpdateRequestedBook)
		requests.DELETE("/:id", requestedBookController.DeleteRequestedBook)
	}
}
