package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/controllers"
	"github.com/openshelf/library-backend/src/services"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService) {

	bookController := controllers.NewBookController(service)

	books := router.Group("/books")
	{
		books.GET("", bookController.GetAllBooks)
		books.GET("/:id", bookController.GetBookByID)
		books.POST("", bookController.CreateBook)
		books.PUT("/:id", bookController.UpdateBook)
		books.DELETE("/:id", bookController.DeleteBook)
	}
}
