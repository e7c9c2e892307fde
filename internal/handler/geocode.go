package handler

import (
	"context"
	"net/http"

	"sensitive-places-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) (models.Coordinates, error)
}

// GeocodeResponse is the body of a successful GET /geocode.
type GeocodeResponse struct {
	Address  string             `json:"address" example:"Piazza del Duomo, Milano"`
	Location models.Coordinates `json:"location" swaggertype:"array,number" example:"45.4642,9.19"`
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Resolve an address to coordinates
//	@Tags		geocoding
//	@Produce	json
//	@Param		address	query		string	true	"Free-text address"
//	@Success	200		{object}	GeocodeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		address = c.Query("q")
	}
	if address == "" {
		badRequest(c, "missing required query parameter 'address'")
		return
	}

	location, err := h.service.Geocode(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{Address: address, Location: location})
}
