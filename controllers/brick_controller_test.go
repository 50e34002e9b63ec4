package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/tests/testutil"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON: %v", err)
	}
	return response
}

func assertDecimalField(t *testing.T, data map[string]interface{}, field string, expected string) {
	t.Helper()
	raw, ok := data[field].(string)
	if !ok {
		t.Fatalf("field %s should be a decimal string, got %T", field, data[field])
	}
	value, err := decimal.NewFromString(raw)
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString(expected)),
		"field %s: expected %s, got %s", field, expected, raw)
}

func TestCreateBrick(t *testing.T) {
	config.SetDB(testutil.NewTestDB(t))

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully create brick",
			requestBody: map[string]interface{}{
				"type":          "Red Clay",
				"description":   "Standard red clay brick",
				"current_stock": 5000,
				"unit_price":    "5000.00",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "Red Clay", data["type"])
				assert.Equal(t, float64(5000), data["current_stock"])
				assert.Equal(t, float64(1000), data["min_stock"], "min stock defaults to 1000")
				assertDecimalField(t, data, "unit_price", "5000.00")
				assert.NotEmpty(t, data["id"])
			},
		},
		{
			name: "Fail with missing type",
			requestBody: map[string]interface{}{
				"description": "No type",
				"unit_price":  "100",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with missing unit price",
			requestBody: map[string]interface{}{
				"type":        "Fly Ash",
				"description": "No price",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/bricks", CreateBrick)

			w := performRequest(router, http.MethodPost, "/bricks", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := decodeResponse(t, w)
			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}
			if tt.checkResponse != nil {
				assert.True(t, response["success"].(bool))
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestUpdateBrickPartial(t *testing.T) {
	db := testutil.NewTestDB(t)
	config.SetDB(db)

	brick := models.Brick{
		Type:         "Red Clay",
		Description:  "Standard red clay brick",
		CurrentStock: 5000,
		MinStock:     500,
		UnitPrice:    decimal.RequireFromString("5000.00"),
	}
	assert.NoError(t, db.Create(&brick).Error)

	router := setupTestRouter()
	router.PUT("/bricks/:id", UpdateBrick)

	// Only the stock is updated; everything else must survive
	w := performRequest(router, http.MethodPut, "/bricks/"+brick.ID, map[string]interface{}{
		"current_stock": 4200,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(4200), data["current_stock"])
	assert.Equal(t, "Red Clay", data["type"])
	assert.Equal(t, float64(500), data["min_stock"])
	assertDecimalField(t, data, "unit_price", "5000.00")
}

func TestUpdateBrickNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.PUT("/bricks/:id", UpdateBrick)

	w := performRequest(router, http.MethodPut, "/bricks/no-such-id", map[string]interface{}{
		"current_stock": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Update on a missing id must never create a record
	var count int64
	db.Model(&models.Brick{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteBrick(t *testing.T) {
	db := testutil.NewTestDB(t)
	config.SetDB(db)

	brick := models.Brick{
		Type:        "Red Clay",
		Description: "Standard red clay brick",
		UnitPrice:   decimal.RequireFromString("5000.00"),
	}
	assert.NoError(t, db.Create(&brick).Error)

	router := setupTestRouter()
	router.DELETE("/bricks/:id", DeleteBrick)

	w := performRequest(router, http.MethodDelete, "/bricks/"+brick.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting again reports not found
	w = performRequest(router, http.MethodDelete, "/bricks/"+brick.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
