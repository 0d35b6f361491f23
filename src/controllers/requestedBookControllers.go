package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/models"
	"github.com/openshelf/library-backend/src/services"
)

type RequestedBookController struct {
	service *services.RequestedBookService
}

func NewRequestedBookController(service *services.RequestedBookService) *RequestedBookController {
	return &RequestedBookController{service: service}
}

// GetAllRequestedBooks handles GET requests to retrieve all requested book records
func (c *RequestedBookController) GetAllRequestedBooks(ctx *gin.Context) {
	requests, err := c.service.GetAllRequestedBooks()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// GetRequestedBookByID handles GET requests to retrieve a requested book by its ID
func (c *RequestedBookController) GetRequestedBookByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requested book ID"})
		return
	}

	request, err := c.service.GetRequestedBookByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

// CreateRequestedBook handles POST requests to create a new requested book record
func (c *RequestedBookController) CreateRequestedBook(ctx *gin.Context) {
	var request models.RequestedBookModel
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdRequest, err := c.service.CreateRequestedBook(&request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdRequest)
}

// UpdateRequestedBook handles PUT requests to update an existing requested book record
func (c *RequestedBookController) UpdateRequestedBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requested book ID"})
		return
	}

	var request models.RequestedBookModel
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedRequest, err := c.service.UpdateRequestedBook(id, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedRequest)
}

// DeleteRequestedBook handles DELETE requests to remove a requested book record by its ID
func (c *RequestedBookController) DeleteRequestedBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requested book ID"})
		return
	}

	if err := c.service.DeleteRequestedBook(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, fmt.Sprintf("Requested book with id: %d has been deleted.", id))
}
