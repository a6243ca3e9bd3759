package controllers

import (
	"inventory-api/dto"
	"inventory-api/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ILocationController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	GetPath(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type LocationController struct {
	service services.ILocationService
}

func NewLocationController(service services.ILocationService) ILocationController {
	return &LocationController{service: service}
}

func (c *LocationController) FindAll(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locations, err := c.service.FindAll(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": locations})
}

func (c *LocationController) FindById(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	location, err := c.service.FindById(locationID, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": location})
}

// GetPath returns the chain of ancestors from the root down to the location.
func (c *LocationController) GetPath(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	path, err := c.service.GetPath(locationID, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": path})
}

func (c *LocationController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input dto.CreateLocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newLocation, err := c.service.Create(input, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newLocation})
}

func (c *LocationController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input dto.UpdateLocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedLocation, err := c.service.Update(locationID, userID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": updatedLocation})
}

func (c *LocationController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(locationID, userID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
