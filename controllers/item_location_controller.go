package controllers

import (
	"inventory-api/dto"
	"inventory-api/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IItemLocationController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	FindByItem(ctx *gin.Context)
	FindByLocation(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemLocationController struct {
	service services.IItemLocationService
}

func NewItemLocationController(service services.IItemLocationService) IItemLocationController {
	return &ItemLocationController{service: service}
}

func (c *ItemLocationController) FindAll(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemLocations, err := c.service.FindAll(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": itemLocations})
}

func (c *ItemLocationController) FindById(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	itemLocation, err := c.service.FindById(id, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": itemLocation})
}

func (c *ItemLocationController) FindByItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	itemLocations, err := c.service.FindByItem(itemID, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": itemLocations})
}

func (c *ItemLocationController) FindByLocation(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	locationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	itemLocations, err := c.service.FindByLocation(locationID, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": itemLocations})
}

func (c *ItemLocationController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input dto.CreateItemLocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newItemLocation, err := c.service.Create(input, userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newItemLocation})
}

func (c *ItemLocationController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input dto.UpdateItemLocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedItemLocation, err := c.service.Update(id, userID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": updatedItemLocation})
}

func (c *ItemLocationController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id, userID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
