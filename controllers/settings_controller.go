package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// SettingEntry is one {key, value} pair of the bulk settings payload
type SettingEntry struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// GetSettings handles GET /api/v1/settings - lists the settings bag
func GetSettings(c *gin.Context) {
	db := config.GetDB()
	var settings []models.Setting
	if err := db.Order("key ASC").Find(&settings).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch settings")
		return
	}
	respondData(c, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/settings - bulk upsert of {key, value}
// pairs; returns the full bag after the write
func UpdateSettings(c *gin.Context) {
	var entries []SettingEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings data")
		return
	}

	db := config.GetDB()
	for _, entry := range entries {
		setting := models.Setting{Key: entry.Key, Value: entry.Value}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&setting).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update settings")
			return
		}
	}

	var settings []models.Setting
	if err := db.Order("key ASC").Find(&settings).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch settings")
		return
	}
	respondData(c, http.StatusOK, settings)
}
