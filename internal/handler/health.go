package handler

import (
	"errors"
	"net/http"

	"sensitive-places-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports the outcome of the backend start-up probe.
type ReadinessChecker interface {
	Err() error
}

// HealthHandler reports service health
type HealthHandler struct {
	readiness ReadinessChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(readiness ReadinessChecker) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Health handles GET /health requests
//
//	@Summary	Report whether the place backend is ready
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	err := h.readiness.Err()
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, provider.ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
	}
}
