package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/models"
	"github.com/openshelf/library-backend/src/services"
)

type MembershipController struct {
	service *services.MembershipService
}

func NewMembershipController(service *services.MembershipService) *MembershipController {
	return &MembershipController{service: service}
}

// GetAllMemberships handles GET requests to retrieve all membership records
func (c *MembershipController) GetAllMemberships(ctx *gin.Context) {
	memberships, err := c.service.GetAllMemberships()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, memberships)
}

// GetMembershipByID handles GET requests to retrieve a membership by its ID
func (c *MembershipController) GetMembershipByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	membership, err := c.service.GetMembershipByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, membership)
}

// CreateMembership handles POST requests to create a new membership record.
// A missing user or book reference comes back as a 404 naming that reference.
func (c *MembershipController) CreateMembership(ctx *gin.Context) {
	var membership models.MembershipModel
	if err := ctx.ShouldBindJSON(&membership); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdMembership, err := c.service.CreateMembership(&membership)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdMembership)
}

// UpdateMembership handles PUT requests to repoint an existing membership
func (c *MembershipController) UpdateMembership(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	var membership models.MembershipModel
	if err := ctx.ShouldBindJSON(&membership); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedMembership, err := c.service.UpdateMembership(id, &membership)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedMembership)
}

// DeleteMembership handles DELETE requests to remove a membership record by its ID
func (c *MembershipController) DeleteMembership(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	if err := c.service.DeleteMembership(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, fmt.Sprintf("Membership with id: %d has been deleted.", id))
}
