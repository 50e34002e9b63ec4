package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/services"
)

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondData writes the standard success envelope
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondServiceError maps workflow errors onto HTTP statuses:
// validation and pricing failures are 400, missing records are 404,
// everything else is a 500.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrInvalidPricingInput):
		respondError(c, http.StatusBadRequest, "INVALID_PRICING_INPUT", err.Error())
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message)
	case services.IsNotFound(err):
		respondError(c, http.StatusNotFound, "NOT_FOUND", notFoundMessage)
	default:
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Unexpected database error")
	}
}
