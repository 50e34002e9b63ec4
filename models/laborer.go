package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Laborer represents a worker employed by the brickworks
type Laborer struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Phone         string          `gorm:"not null" json:"phone"`
	Address       *string         `json:"address"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_salary"`
	Status        string          `gorm:"not null;default:'active'" json:"status"` // active, inactive, on_leave
}

// TableName specifies the table name for the Laborer model
func (Laborer) TableName() string {
	return "laborers"
}

// BeforeCreate assigns a fresh id when none was provided
func (l *Laborer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
