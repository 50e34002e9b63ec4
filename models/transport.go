package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transport represents a vehicle or piece of equipment used for deliveries
type Transport struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	RegistrationNumber string     `gorm:"uniqueIndex;not null" json:"registration_number"`
	Model              string     `gorm:"not null" json:"model"`
	EquipmentType      string     `json:"equipment_type"` // truck, tractor, loader, ...
	DriverName         *string    `json:"driver_name"`
	DriverPhone        *string    `json:"driver_phone"`
	Status             string     `gorm:"not null;default:'available'" json:"status"` // available, assigned, maintenance
	LastMaintenance    *time.Time `json:"last_maintenance"`
	NextMaintenance    *time.Time `json:"next_maintenance"`
}

// TableName specifies the table name for the Transport model
func (Transport) TableName() string {
	return "transport"
}

// BeforeCreate assigns a fresh id when none was provided
func (t *Transport) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
