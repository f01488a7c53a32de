package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amirulhaziq/jobsheet-api/config"
	"github.com/amirulhaziq/jobsheet-api/models"
	"github.com/amirulhaziq/jobsheet-api/services"
)

// setupIntegrationRouter prepares a database and the real application router
func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Jobsheet{}, &models.Counter{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := services.SeedCounter(db, 199999); err != nil {
		t.Fatalf("Failed to seed counter: %v", err)
	}
	config.SetDB(db)

	return setupRouter()
}

// TestHealthEndpointIntegration tests /health with full routing and middleware
func TestHealthEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, "ok", response["status"])
}

// TestMetricsEndpointIntegration tests /metrics with full routing
func TestMetricsEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, metricsBody, w.Body.String())
}

// TestHealthEndpointMethod tests that only GET is routed
func TestHealthEndpointMethod(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("POST", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "POST should not be allowed")

	req, _ = http.NewRequest("DELETE", "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "DELETE should not be allowed")
}

// TestCORSHeadersIntegration verifies the CORS middleware is wired in
func TestCORSHeadersIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestFullRouteTable verifies every route responds through the real router
func TestFullRouteTable(t *testing.T) {
	router := setupIntegrationRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"home page", "GET", "/", http.StatusOK},
		{"create jobsheet", "GET", "/create", http.StatusOK},
		{"view created jobsheet", "GET", "/jobsheet/200000", http.StatusOK},
		{"view unknown jobsheet", "GET", "/jobsheet/999999", http.StatusNotFound},
		{"print", "POST", "/api/print/200000", http.StatusOK},
		{"api get", "GET", "/api/jobsheet/200000", http.StatusOK},
		{"api get unknown", "GET", "/api/jobsheet/999999", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
