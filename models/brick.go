package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Brick represents a brick type tracked in inventory
type Brick struct {
	ID           string          `gorm:"primaryKey" json:"id"`
	Type         string          `gorm:"not null" json:"type"`
	Description  string          `gorm:"not null" json:"description"`
	CurrentStock int             `gorm:"not null;default:0" json:"current_stock"`
	MinStock     int             `gorm:"not null;default:1000" json:"min_stock"` // reorder threshold
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LastUpdated  time.Time       `gorm:"autoUpdateTime" json:"last_updated"`
}

// TableName specifies the table name for the Brick model
func (Brick) TableName() string {
	return "bricks"
}

// BeforeCreate assigns a fresh id when none was provided
func (b *Brick) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
