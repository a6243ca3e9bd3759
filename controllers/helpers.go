package controllers

import (
	"errors"
	"inventory-api/apperrors"
	"inventory-api/models"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user placed on the context by the
// auth middleware. Aborts with 401 when missing.
func currentUserID(ctx *gin.Context) (uint, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return 0, false
	}
	return user.(*models.User).ID, true
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Not-owned and nonexistent both read as 404 so callers cannot probe for
// other tenants' ids.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrItemNotFound),
		errors.Is(err, apperrors.ErrLocationNotFound),
		errors.Is(err, apperrors.ErrItemLocationNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateAssignment),
		errors.Is(err, apperrors.ErrLocationHasChildren),
		errors.Is(err, apperrors.ErrConcurrentModification):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLocationCycle),
		errors.Is(err, apperrors.ErrNegativeQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected service error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
	}
}
