package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sensitive-places-api/internal/models"
	"sensitive-places-api/internal/provider"
	"sensitive-places-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticReadiness struct{ err error }

func (s staticReadiness) Err() error { return s.err }

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "ready",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "still probing",
			err:            provider.ErrNotReady,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"starting"}`,
		},
		{
			name:           "probe failed",
			err:            fmt.Errorf("provider: probe failed: %w", errors.New("api key not configured")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable","error":"provider: probe failed: api key not configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(staticReadiness{err: tt.err})
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			handler.Health(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/categories", nil)

	Categories(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body []models.CategoryInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.AllCategoryInfo(), body)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"empty address", fmt.Errorf("service: %w", service.ErrEmptyAddress), http.StatusBadRequest},
		{"invalid coordinates", fmt.Errorf("service: %w", service.ErrInvalidCoordinates), http.StatusBadRequest},
		{"invalid radius", fmt.Errorf("service: %w", service.ErrInvalidRadius), http.StatusBadRequest},
		{"not found", fmt.Errorf("service: %w", service.ErrAddressNotFound), http.StatusNotFound},
		{"superseded", service.ErrSearchSuperseded, http.StatusConflict},
		{"provider", fmt.Errorf("service: %w", &service.ProviderQueryError{Tag: "school", Status: "REQUEST_DENIED"}), http.StatusBadGateway},
		{"geocoding", &service.GeocodingError{Err: assert.AnError}, http.StatusBadGateway},
		{"other", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}
