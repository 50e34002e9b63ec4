package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// CreateTransportRequest represents the request body for registering a vehicle
type CreateTransportRequest struct {
	RegistrationNumber string     `json:"registration_number" binding:"required"`
	Model              string     `json:"model" binding:"required"`
	EquipmentType      string     `json:"equipment_type"`
	DriverName         *string    `json:"driver_name"`
	DriverPhone        *string    `json:"driver_phone"`
	Status             string     `json:"status"`
	LastMaintenance    *time.Time `json:"last_maintenance"`
	NextMaintenance    *time.Time `json:"next_maintenance"`
}

// UpdateTransportRequest represents a partial update of a vehicle
type UpdateTransportRequest struct {
	RegistrationNumber *string    `json:"registration_number"`
	Model              *string    `json:"model"`
	EquipmentType      *string    `json:"equipment_type"`
	DriverName         *string    `json:"driver_name"`
	DriverPhone        *string    `json:"driver_phone"`
	Status             *string    `json:"status"`
	LastMaintenance    *time.Time `json:"last_maintenance"`
	NextMaintenance    *time.Time `json:"next_maintenance"`
}

// GetTransport handles GET /api/v1/transport - lists all vehicles
func GetTransport(c *gin.Context) {
	db := config.GetDB()
	var transport []models.Transport
	if err := db.Find(&transport).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch transport")
		return
	}
	respondData(c, http.StatusOK, transport)
}

// GetAvailableTransport handles GET /api/v1/transport/available
func GetAvailableTransport(c *gin.Context) {
	db := config.GetDB()
	var transport []models.Transport
	if err := db.Where("status = ?", "available").Find(&transport).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch available transport")
		return
	}
	respondData(c, http.StatusOK, transport)
}

// CreateTransport handles POST /api/v1/transport - registers a vehicle
func CreateTransport(c *gin.Context) {
	var req CreateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transport data")
		return
	}

	status := req.Status
	if status == "" {
		status = "available"
	}

	transport := models.Transport{
		RegistrationNumber: req.RegistrationNumber,
		Model:              req.Model,
		EquipmentType:      req.EquipmentType,
		DriverName:         req.DriverName,
		DriverPhone:        req.DriverPhone,
		Status:             status,
		LastMaintenance:    req.LastMaintenance,
		NextMaintenance:    req.NextMaintenance,
	}

	db := config.GetDB()
	if err := db.Create(&transport).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create transport")
		return
	}
	respondData(c, http.StatusCreated, transport)
}

// UpdateTransport handles PUT /api/v1/transport/:id
func UpdateTransport(c *gin.Context) {
	db := config.GetDB()
	var transport models.Transport
	if err := db.First(&transport, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Transport not found")
		return
	}

	var req UpdateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transport data")
		return
	}

	updates := map[string]interface{}{}
	if req.RegistrationNumber != nil {
		updates["registration_number"] = *req.RegistrationNumber
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.EquipmentType != nil {
		updates["equipment_type"] = *req.EquipmentType
	}
	if req.DriverName != nil {
		updates["driver_name"] = *req.DriverName
	}
	if req.DriverPhone != nil {
		updates["driver_phone"] = *req.DriverPhone
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.LastMaintenance != nil {
		updates["last_maintenance"] = *req.LastMaintenance
	}
	if req.NextMaintenance != nil {
		updates["next_maintenance"] = *req.NextMaintenance
	}

	if len(updates) > 0 {
		if err := db.Model(&transport).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update transport")
			return
		}
	}
	if err := db.First(&transport, "id = ?", transport.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load transport")
		return
	}
	respondData(c, http.StatusOK, transport)
}

// DeleteTransport handles DELETE /api/v1/transport/:id
func DeleteTransport(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Transport{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete transport")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Transport not found")
		return
	}
	c.Status(http.StatusNoContent)
}
