package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/tests/testutil"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/health", healthCheck)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.Equal(t, "Brickworks API is running", response["message"])
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(testutil.NewTestDB(t))

	router := gin.New()
	registerRoutes(router)

	// Every registered collection should answer a list request
	for _, path := range []string{
		"/api/v1/bricks",
		"/api/v1/transport",
		"/api/v1/laborers",
		"/api/v1/orders",
		"/api/v1/invoices",
		"/api/v1/expenses",
		"/api/v1/kiln-capacity",
		"/api/v1/round-completions",
		"/api/v1/settings",
		"/api/v1/statistics",
	} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s should succeed", path)
	}

	// Unknown routes fall through to 404
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDatabaseStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(testutil.NewTestDB(t))

	router := gin.New()
	router.GET("/api/v1/database/status", databaseStatus)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/database/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.Equal(t, "Database connected", response["message"])
}
