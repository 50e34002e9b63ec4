package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a business expense entry
type Expense struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Category      string          `gorm:"not null" json:"category"`
	Description   string          `gorm:"not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	ExpenseDate   time.Time       `gorm:"not null" json:"expense_date"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName specifies the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate assigns a fresh id and the expense date when not provided
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = time.Now()
	}
	return nil
}
