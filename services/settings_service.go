package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brickworks/brickworks-api/models"
)

// Default charges applied when a setting is missing or unparsable.
// The settings bag is deliberately lenient: a broken value falls back to
// the default instead of failing the request.
var (
	DefaultDeliveryCharge = decimal.NewFromInt(2500)
	DefaultLaborCharge    = decimal.NewFromInt(1000)
	DefaultTaxRate        = decimal.NewFromFloat(0.18)
)

// PricingSettings are the configurable inputs of the pricing engine
type PricingSettings struct {
	DeliveryCharge decimal.Decimal
	LaborCharge    decimal.Decimal
	TaxRate        decimal.Decimal
}

// SettingsService reads the flat key/value settings bag
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the raw value for a settings key, or "" when absent
func (s *SettingsService) Get(key string) string {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		return ""
	}
	return setting.Value
}

// GetDecimal returns a settings value parsed as a decimal, falling back to
// the given default when the key is absent or the value does not parse
func (s *SettingsService) GetDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := s.Get(key)
	if raw == "" {
		return fallback
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return value
}

// PricingSettings loads the current delivery charge, labor charge and tax
// rate, applying the documented defaults (2500, 1000, 0.18)
func (s *SettingsService) PricingSettings() PricingSettings {
	return PricingSettings{
		DeliveryCharge: s.GetDecimal("deliveryCharge", DefaultDeliveryCharge),
		LaborCharge:    s.GetDecimal("laborCharge", DefaultLaborCharge),
		TaxRate:        s.GetDecimal("taxRate", DefaultTaxRate),
	}
}
