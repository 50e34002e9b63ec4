package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a customer order for bricks.
// The unit price is copied from the brick at creation time so later price
// changes never affect an existing order.
type Order struct {
	ID                  string          `gorm:"primaryKey" json:"id"`
	OrderNumber         string          `gorm:"uniqueIndex;not null" json:"order_number"` // generated, e.g. ORD001
	CustomerName        string          `gorm:"not null" json:"customer_name"`
	CustomerPhone       *string         `json:"customer_phone"`
	CustomerAddress     string          `gorm:"not null" json:"customer_address"`
	DeliveryAddress     string          `gorm:"not null" json:"delivery_address"`
	BrickType           string          `gorm:"not null;index" json:"brick_type"` // references bricks.id
	Quantity            int             `gorm:"not null" json:"quantity"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	AssignedTransportID *string         `gorm:"index" json:"assigned_transport_id"`
	AssignedLaborerIDs  StringList      `gorm:"type:text" json:"assigned_laborer_ids"`
	Status              string          `gorm:"not null;default:'pending'" json:"status"` // pending, in_transit, delivered, cancelled
	OrderDate           time.Time       `json:"order_date"`
	DeliveryDate        *time.Time      `json:"delivery_date"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a fresh id and the order date when not provided
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}
