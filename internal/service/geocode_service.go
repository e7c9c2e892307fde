package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sensitive-places-api/internal/models"
)

// GeoCodeService resolves free-text addresses to coordinates.
type GeoCodeService struct {
	geocoder Geocoder
	country  string
}

// Geocoder is the geocoding backend consumed by GeoCodeService.
type Geocoder interface {
	Geocode(ctx context.Context, q models.GeocodeQuery) (models.GeocodeResult, error)
}

// NewGeoCodeService creates a geocode service restricted to country.
func NewGeoCodeService(geocoder Geocoder, country string) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder, country: country}
}

// Geocode resolves address to a coordinate pair. It returns ErrAddressNotFound
// when the backend has no match and a *GeocodingError for any other failure.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Coordinates{}, fmt.Errorf("service: %w", ErrEmptyAddress)
	}

	result, err := s.geocoder.Geocode(ctx, models.GeocodeQuery{Address: address, Country: s.country})
	if err != nil {
		var gerr *GeocodingError
		if errors.As(err, &gerr) {
			return models.Coordinates{}, err
		}
		wrapped := &GeocodingError{Err: fmt.Errorf("service: failed to geocode address: %w", err)}
		var serr *models.StatusError
		if errors.As(err, &serr) {
			wrapped.Status = serr.Status
		}
		return models.Coordinates{}, wrapped
	}
	if !result.Found {
		return models.Coordinates{}, fmt.Errorf("service: %q: %w", address, ErrAddressNotFound)
	}
	return result.Location, nil
}
