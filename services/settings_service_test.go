package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/tests/testutil"
)

func TestPricingSettingsDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(db)

	// Empty settings bag falls back to the documented defaults
	pricing := svc.PricingSettings()
	assert.True(t, dec("2500").Equal(pricing.DeliveryCharge))
	assert.True(t, dec("1000").Equal(pricing.LaborCharge))
	assert.True(t, dec("0.18").Equal(pricing.TaxRate))
}

func TestPricingSettingsFromBag(t *testing.T) {
	db := testutil.NewTestDB(t)
	db.Create(&models.Setting{Key: "deliveryCharge", Value: "3000"})
	db.Create(&models.Setting{Key: "laborCharge", Value: "1500"})
	db.Create(&models.Setting{Key: "taxRate", Value: "0.10"})

	pricing := NewSettingsService(db).PricingSettings()
	assert.True(t, dec("3000").Equal(pricing.DeliveryCharge))
	assert.True(t, dec("1500").Equal(pricing.LaborCharge))
	assert.True(t, dec("0.10").Equal(pricing.TaxRate))
}

func TestPricingSettingsUnparsableValuesFallBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	db.Create(&models.Setting{Key: "deliveryCharge", Value: "not-a-number"})
	db.Create(&models.Setting{Key: "taxRate", Value: ""})

	pricing := NewSettingsService(db).PricingSettings()
	assert.True(t, dec("2500").Equal(pricing.DeliveryCharge))
	assert.True(t, dec("0.18").Equal(pricing.TaxRate))
}

func TestGetReturnsEmptyForMissingKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(db)

	assert.Equal(t, "", svc.Get("companyName"))

	db.Create(&models.Setting{Key: "companyName", Value: "Brickworks Ltd"})
	assert.Equal(t, "Brickworks Ltd", svc.Get("companyName"))
}
