package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// CreateKilnRequest represents the request body for registering a kiln
type CreateKilnRequest struct {
	KilnNumber  string     `json:"kiln_number" binding:"required"`
	Capacity    int        `json:"capacity" binding:"required,gt=0"`
	CurrentLoad int        `json:"current_load"`
	BrickType   string     `json:"brick_type" binding:"required"`
	Status      string     `json:"status"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Temperature *int       `json:"temperature"`
}

// UpdateKilnRequest represents a partial update of a kiln
type UpdateKilnRequest struct {
	KilnNumber  *string    `json:"kiln_number"`
	Capacity    *int       `json:"capacity"`
	CurrentLoad *int       `json:"current_load"`
	BrickType   *string    `json:"brick_type"`
	Status      *string    `json:"status"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Temperature *int       `json:"temperature"`
}

// GetKilns handles GET /api/v1/kiln-capacity - lists kilns by kiln number
func GetKilns(c *gin.Context) {
	db := config.GetDB()
	var kilns []models.KilnCapacity
	if err := db.Order("kiln_number ASC").Find(&kilns).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch kiln capacity data")
		return
	}
	respondData(c, http.StatusOK, kilns)
}

// CreateKiln handles POST /api/v1/kiln-capacity
func CreateKiln(c *gin.Context) {
	var req CreateKilnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid kiln capacity data")
		return
	}

	status := req.Status
	if status == "" {
		status = "idle"
	}

	kiln := models.KilnCapacity{
		KilnNumber:  req.KilnNumber,
		Capacity:    req.Capacity,
		CurrentLoad: req.CurrentLoad,
		BrickType:   req.BrickType,
		Status:      status,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Temperature: req.Temperature,
	}

	db := config.GetDB()
	if err := db.Create(&kiln).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create kiln")
		return
	}
	respondData(c, http.StatusCreated, kiln)
}

// UpdateKiln handles PUT /api/v1/kiln-capacity/:id
func UpdateKiln(c *gin.Context) {
	db := config.GetDB()
	var kiln models.KilnCapacity
	if err := db.First(&kiln, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Kiln not found")
		return
	}

	var req UpdateKilnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid kiln capacity data")
		return
	}

	updates := map[string]interface{}{}
	if req.KilnNumber != nil {
		updates["kiln_number"] = *req.KilnNumber
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.CurrentLoad != nil {
		updates["current_load"] = *req.CurrentLoad
	}
	if req.BrickType != nil {
		updates["brick_type"] = *req.BrickType
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Temperature != nil {
		updates["temperature"] = *req.Temperature
	}

	if len(updates) > 0 {
		if err := db.Model(&kiln).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update kiln")
			return
		}
	}
	if err := db.First(&kiln, "id = ?", kiln.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load kiln")
		return
	}
	respondData(c, http.StatusOK, kiln)
}

// DeleteKiln handles DELETE /api/v1/kiln-capacity/:id
func DeleteKiln(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.KilnCapacity{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete kiln")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Kiln not found")
		return
	}
	c.Status(http.StatusNoContent)
}
