package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KilnCapacity represents the state of one kiln
type KilnCapacity struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	KilnNumber  string     `gorm:"not null" json:"kiln_number"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	CurrentLoad int        `gorm:"not null;default:0" json:"current_load"`
	BrickType   string     `gorm:"not null" json:"brick_type"`
	Status      string     `gorm:"not null;default:'idle'" json:"status"` // idle, loading, firing, cooling, unloading, maintenance
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Temperature *int       `json:"temperature"`
	LastUpdated time.Time  `gorm:"autoUpdateTime" json:"last_updated"`
	FiringHours *float64   `gorm:"-" json:"firing_hours,omitempty"` // computed field, elapsed hours while firing
}

// TableName specifies the table name for the KilnCapacity model
func (KilnCapacity) TableName() string {
	return "kiln_capacity"
}

// BeforeCreate assigns a fresh id when none was provided
func (k *KilnCapacity) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// AfterFind fills in the elapsed firing time for kilns that are currently firing
func (k *KilnCapacity) AfterFind(tx *gorm.DB) error {
	if k.Status == "firing" && k.StartTime != nil {
		hours := time.Since(*k.StartTime).Hours()
		k.FiringHours = &hours
	}
	return nil
}
