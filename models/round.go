package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundCompletion represents one batch of bricks fired through a kiln
type RoundCompletion struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	RoundNumber    string     `gorm:"uniqueIndex;not null" json:"round_number"` // generated when not supplied, e.g. RND0001
	KilnID         *string    `gorm:"index" json:"kiln_id"`
	BrickType      string     `gorm:"not null" json:"brick_type"`
	Quantity       int        `gorm:"not null" json:"quantity"`
	Status         string     `gorm:"not null;default:'in_progress'" json:"status"` // in_progress, completed
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	CompletionDate *time.Time `json:"completion_date"`
	QualityGrade   *string    `json:"quality_grade"`
	Notes          *string    `json:"notes"`
}

// TableName specifies the table name for the RoundCompletion model
func (RoundCompletion) TableName() string {
	return "round_completions"
}

// BeforeCreate assigns a fresh id and the start date when not provided
func (r *RoundCompletion) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartDate.IsZero() {
		r.StartDate = time.Now()
	}
	return nil
}
