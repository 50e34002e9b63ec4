package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/tests/testutil"
)

func TestGetAvailableTransportFiltersByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	config.SetDB(db)

	assert.NoError(t, db.Create(&models.Transport{
		RegistrationNumber: "YGN-1234",
		Model:              "Hino 500",
		EquipmentType:      "truck",
		Status:             "available",
	}).Error)
	assert.NoError(t, db.Create(&models.Transport{
		RegistrationNumber: "YGN-5678",
		Model:              "Isuzu Elf",
		EquipmentType:      "truck",
		Status:             "assigned",
	}).Error)

	router := setupTestRouter()
	router.GET("/transport/available", GetAvailableTransport)

	w := performRequest(router, http.MethodGet, "/transport/available", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	transport := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, transport, 1)
	assert.Equal(t, "YGN-1234", transport[0].(map[string]interface{})["registration_number"])
}

func TestCreateTransportDefaultsToAvailable(t *testing.T) {
	config.SetDB(testutil.NewTestDB(t))

	router := setupTestRouter()
	router.POST("/transport", CreateTransport)

	w := performRequest(router, http.MethodPost, "/transport", map[string]interface{}{
		"registration_number": "MDY-4321",
		"model":               "Tata 407",
		"equipment_type":      "truck",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "available", data["status"])
	assert.NotEmpty(t, data["id"])
}
