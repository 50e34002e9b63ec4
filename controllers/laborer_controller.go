package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// CreateLaborerRequest represents the request body for adding a laborer
type CreateLaborerRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	Address       *string         `json:"address"`
	MonthlySalary decimal.Decimal `json:"monthly_salary" binding:"required"`
	Status        string          `json:"status"`
}

// UpdateLaborerRequest represents a partial update of a laborer
type UpdateLaborerRequest struct {
	Name          *string          `json:"name"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
	Status        *string          `json:"status"`
}

// GetLaborers handles GET /api/v1/laborers - lists all laborers
func GetLaborers(c *gin.Context) {
	db := config.GetDB()
	var laborers []models.Laborer
	if err := db.Find(&laborers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch laborers")
		return
	}
	respondData(c, http.StatusOK, laborers)
}

// GetActiveLaborers handles GET /api/v1/laborers/active
func GetActiveLaborers(c *gin.Context) {
	db := config.GetDB()
	var laborers []models.Laborer
	if err := db.Where("status = ?", "active").Find(&laborers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch active laborers")
		return
	}
	respondData(c, http.StatusOK, laborers)
}

// CreateLaborer handles POST /api/v1/laborers
func CreateLaborer(c *gin.Context) {
	var req CreateLaborerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid laborer data")
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	laborer := models.Laborer{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		MonthlySalary: req.MonthlySalary,
		Status:        status,
	}

	db := config.GetDB()
	if err := db.Create(&laborer).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create laborer")
		return
	}
	respondData(c, http.StatusCreated, laborer)
}

// UpdateLaborer handles PUT /api/v1/laborers/:id
func UpdateLaborer(c *gin.Context) {
	db := config.GetDB()
	var laborer models.Laborer
	if err := db.First(&laborer, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Laborer not found")
		return
	}

	var req UpdateLaborerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid laborer data")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.MonthlySalary != nil {
		updates["monthly_salary"] = *req.MonthlySalary
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&laborer).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update laborer")
			return
		}
	}
	if err := db.First(&laborer, "id = ?", laborer.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load laborer")
		return
	}
	respondData(c, http.StatusOK, laborer)
}

// DeleteLaborer handles DELETE /api/v1/laborers/:id
func DeleteLaborer(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Laborer{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete laborer")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Laborer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
