package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sensitive-places-api/internal/models"
	"sensitive-places-api/internal/service"

	"github.com/gin-gonic/gin"
)

// NearbyService interface for dependency injection
type NearbyService interface {
	Search(context.Context, service.SearchRequest) (*models.NearbySearch, error)
}

// RadiusBounds holds the default radius and the accepted range, in meters.
type RadiusBounds struct {
	Default int
	Min     int
	Max     int
}

// NearbyHandler handles nearby place searches
type NearbyHandler struct {
	service  NearbyService
	sessions *SessionStore
	radius   RadiusBounds
}

// NewNearbyHandler creates a new nearby handler. sessions may be nil, in
// which case every request runs independently.
func NewNearbyHandler(svc NearbyService, sessions *SessionStore, radius RadiusBounds) *NearbyHandler {
	return &NearbyHandler{service: svc, sessions: sessions, radius: radius}
}

// Nearby handles GET /nearby requests
//
//	@Summary		Find sensitive places and betting shops around a point
//	@Description	The center is either geocoded from address or given as lat/lng.
//	@Description	Searches sharing an X-Session-ID header follow a last-request-wins policy.
//	@Tags			nearby
//	@Produce		json
//	@Param			address			query		string	false	"Free-text address"
//	@Param			lat				query		number	false	"Center latitude"
//	@Param			lng				query		number	false	"Center longitude"
//	@Param			radius			query		int		false	"Search radius in meters"	default(300)
//	@Param			X-Session-ID	header		string	false	"Client session id"
//	@Success		200				{object}	models.NearbySearch
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/nearby [get]
func (h *NearbyHandler) Nearby(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var svc NearbyService = h.service
	if id := strings.TrimSpace(c.GetHeader(SessionHeader)); id != "" && h.sessions != nil {
		svc = h.sessions.Get(id)
	}

	result, err := svc.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *NearbyHandler) parseRequest(c *gin.Context) (service.SearchRequest, error) {
	req := service.SearchRequest{
		Address: strings.TrimSpace(c.Query("address")),
		Radius:  h.radius.Default,
	}

	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.Atoi(radiusStr)
		if err != nil {
			return req, fmt.Errorf("invalid radius format")
		}
		req.Radius = radius
	}
	if req.Radius < h.radius.Min || req.Radius > h.radius.Max {
		return req, fmt.Errorf("radius must be between %d and %d meters", h.radius.Min, h.radius.Max)
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	switch {
	case latStr == "" && lngStr == "":
		if req.Address == "" {
			return req, fmt.Errorf("missing required query parameter 'address' or 'lat' and 'lng'")
		}
	case latStr == "" || lngStr == "":
		return req, fmt.Errorf("query parameters 'lat' and 'lng' must be given together")
	default:
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return req, fmt.Errorf("invalid latitude format")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return req, fmt.Errorf("invalid longitude format")
		}
		center := models.Coordinates{Lat: lat, Lng: lng}
		if !center.Valid() {
			return req, fmt.Errorf("coordinates out of range")
		}
		req.Center = &center
	}

	return req, nil
}
