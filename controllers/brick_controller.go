package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// CreateBrickRequest represents the request body for creating a brick type
type CreateBrickRequest struct {
	Type         string          `json:"type" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	CurrentStock int             `json:"current_stock"`
	MinStock     *int            `json:"min_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateBrickRequest represents a partial update of a brick type
type UpdateBrickRequest struct {
	Type         *string          `json:"type"`
	Description  *string          `json:"description"`
	CurrentStock *int             `json:"current_stock"`
	MinStock     *int             `json:"min_stock"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
}

// GetBricks handles GET /api/v1/bricks - lists all brick types
func GetBricks(c *gin.Context) {
	db := config.GetDB()
	var bricks []models.Brick
	if err := db.Find(&bricks).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch bricks")
		return
	}
	respondData(c, http.StatusOK, bricks)
}

// CreateBrick handles POST /api/v1/bricks - creates a new brick type
func CreateBrick(c *gin.Context) {
	var req CreateBrickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid brick data")
		return
	}

	minStock := 1000
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	brick := models.Brick{
		Type:         req.Type,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinStock:     minStock,
		UnitPrice:    req.UnitPrice,
	}

	db := config.GetDB()
	if err := db.Create(&brick).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create brick")
		return
	}
	respondData(c, http.StatusCreated, brick)
}

// UpdateBrick handles PUT /api/v1/bricks/:id - partially updates a brick type
func UpdateBrick(c *gin.Context) {
	db := config.GetDB()
	var brick models.Brick
	if err := db.First(&brick, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Brick not found")
		return
	}

	var req UpdateBrickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid brick data")
		return
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CurrentStock != nil {
		updates["current_stock"] = *req.CurrentStock
	}
	if req.MinStock != nil {
		updates["min_stock"] = *req.MinStock
	}
	if req.UnitPrice != nil {
		updates["unit_price"] = *req.UnitPrice
	}

	if len(updates) > 0 {
		if err := db.Model(&brick).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update brick")
			return
		}
	}
	if err := db.First(&brick, "id = ?", brick.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load brick")
		return
	}
	respondData(c, http.StatusOK, brick)
}

// DeleteBrick handles DELETE /api/v1/bricks/:id
func DeleteBrick(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Brick{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete brick")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Brick not found")
		return
	}
	c.Status(http.StatusNoContent)
}
