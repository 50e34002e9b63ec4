package controllers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/tests/testutil"
)

func TestGetActiveLaborersFiltersByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	config.SetDB(db)

	assert.NoError(t, db.Create(&models.Laborer{
		Name:          "Ko Zaw",
		Phone:         "09-555-1234",
		MonthlySalary: decimal.RequireFromString("350000"),
		Status:        "active",
	}).Error)
	assert.NoError(t, db.Create(&models.Laborer{
		Name:          "U Hla",
		Phone:         "09-555-5678",
		MonthlySalary: decimal.RequireFromString("400000"),
		Status:        "on_leave",
	}).Error)

	router := setupTestRouter()
	router.GET("/laborers/active", GetActiveLaborers)

	w := performRequest(router, http.MethodGet, "/laborers/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	laborers := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, laborers, 1)
	assert.Equal(t, "Ko Zaw", laborers[0].(map[string]interface{})["name"])
}

func TestCreateLaborerDefaultsToActive(t *testing.T) {
	config.SetDB(testutil.NewTestDB(t))

	router := setupTestRouter()
	router.POST("/laborers", CreateLaborer)

	w := performRequest(router, http.MethodPost, "/laborers", map[string]interface{}{
		"name":           "Ma Thida",
		"phone":          "09-555-9999",
		"monthly_salary": "300000",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "active", data["status"])
	assertDecimalField(t, data, "monthly_salary", "300000")
}
