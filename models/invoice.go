package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is a point-in-time snapshot of an order's billing details.
// Customer fields are copied from the order at generation time and are not
// kept in sync with later order edits.
type Invoice struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	InvoiceNumber   string          `gorm:"uniqueIndex;not null" json:"invoice_number"` // e.g. INV-ORD001
	OrderID         string          `gorm:"not null;index" json:"order_id"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerAddress string          `gorm:"not null" json:"customer_address"`
	DeliveryAddress string          `gorm:"not null" json:"delivery_address"`
	Items           string          `gorm:"type:text;not null" json:"items"` // JSON-encoded []InvoiceItem
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentStatus   string          `gorm:"not null;default:'pending'" json:"payment_status"` // pending, paid, overdue
	InvoiceDate     time.Time       `json:"invoice_date"`
	DueDate         *time.Time      `json:"due_date"`
}

// InvoiceItem is a single line on an invoice
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// BeforeCreate assigns a fresh id and the invoice date when not provided
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.InvoiceDate.IsZero() {
		i.InvoiceDate = time.Now()
	}
	return nil
}

// SetItems serializes the given line items into the Items column
func (i *Invoice) SetItems(items []InvoiceItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	i.Items = string(b)
	return nil
}

// GetItems deserializes the Items column back into line items
func (i *Invoice) GetItems() ([]InvoiceItem, error) {
	var items []InvoiceItem
	if err := json.Unmarshal([]byte(i.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}
