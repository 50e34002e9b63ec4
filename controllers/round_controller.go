package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/services"
	"github.com/brickworks/brickworks-api/utils"
)

// CreateRoundRequest represents the request body for recording a kiln round
type CreateRoundRequest struct {
	RoundNumber    string     `json:"round_number"`
	KilnID         *string    `json:"kiln_id"`
	BrickType      string     `json:"brick_type" binding:"required"`
	Quantity       int        `json:"quantity" binding:"required,gt=0"`
	Status         string     `json:"status"`
	StartDate      *time.Time `json:"start_date"`
	CompletionDate *time.Time `json:"completion_date"`
	QualityGrade   *string    `json:"quality_grade"`
	Notes          *string    `json:"notes"`
}

// UpdateRoundRequest represents a partial update of a kiln round
type UpdateRoundRequest struct {
	KilnID         *string    `json:"kiln_id"`
	BrickType      *string    `json:"brick_type"`
	Quantity       *int       `json:"quantity"`
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"start_date"`
	CompletionDate *time.Time `json:"completion_date"`
	QualityGrade   *string    `json:"quality_grade"`
	Notes          *string    `json:"notes"`
}

// GetRounds handles GET /api/v1/round-completions - lists rounds, newest first
func GetRounds(c *gin.Context) {
	db := config.GetDB()
	var rounds []models.RoundCompletion
	if err := db.Order("start_date DESC").Find(&rounds).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch round completions")
		return
	}
	respondData(c, http.StatusOK, rounds)
}

// CreateRound handles POST /api/v1/round-completions. A round number is
// generated when the caller does not supply one.
func CreateRound(c *gin.Context) {
	var req CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid round completion data")
		return
	}

	db := config.GetDB()
	roundNumber := req.RoundNumber
	if roundNumber == "" {
		seq, err := services.NextSequence(db, services.SequenceRound)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to generate round number")
			return
		}
		roundNumber = utils.FormatRoundNumber(seq)
	}

	status := req.Status
	if status == "" {
		status = "in_progress"
	}

	round := models.RoundCompletion{
		RoundNumber:    roundNumber,
		KilnID:         req.KilnID,
		BrickType:      req.BrickType,
		Quantity:       req.Quantity,
		Status:         status,
		CompletionDate: req.CompletionDate,
		QualityGrade:   req.QualityGrade,
		Notes:          req.Notes,
	}
	if req.StartDate != nil {
		round.StartDate = *req.StartDate
	}

	if err := db.Create(&round).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create round completion")
		return
	}
	respondData(c, http.StatusCreated, round)
}

// UpdateRound handles PUT /api/v1/round-completions/:id
func UpdateRound(c *gin.Context) {
	db := config.GetDB()
	var round models.RoundCompletion
	if err := db.First(&round, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Round completion not found")
		return
	}

	var req UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid round completion data")
		return
	}

	updates := map[string]interface{}{}
	if req.KilnID != nil {
		updates["kiln_id"] = *req.KilnID
	}
	if req.BrickType != nil {
		updates["brick_type"] = *req.BrickType
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.CompletionDate != nil {
		updates["completion_date"] = *req.CompletionDate
	}
	if req.QualityGrade != nil {
		updates["quality_grade"] = *req.QualityGrade
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := db.Model(&round).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update round completion")
			return
		}
	}
	if err := db.First(&round, "id = ?", round.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load round completion")
		return
	}
	respondData(c, http.StatusOK, round)
}

// DeleteRound handles DELETE /api/v1/round-completions/:id
func DeleteRound(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.RoundCompletion{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete round completion")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Round completion not found")
		return
	}
	c.Status(http.StatusNoContent)
}
