package service

import (
	"errors"
	"fmt"

	"sensitive-places-api/internal/models"
)

var (
	// ErrProviderQuery matches any *ProviderQueryError.
	ErrProviderQuery = errors.New("provider query failed")
	// ErrGeocoding matches any *GeocodingError.
	ErrGeocoding = errors.New("geocoding failed")
	// ErrAddressNotFound is returned when the geocoder resolves an address to nothing.
	ErrAddressNotFound = errors.New("address not found")

	ErrEmptyAddress       = errors.New("address cannot be empty")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("invalid radius")

	// ErrSearchSuperseded is returned by a Session for a search that finished
	// after a newer one had started.
	ErrSearchSuperseded = errors.New("search superseded by a newer request")
)

// ProviderQueryError reports a place-search query that returned neither OK nor
// ZERO_RESULTS, or that could not be performed at all.
type ProviderQueryError struct {
	Group  string
	Tag    string
	Status models.ProviderStatus
	Err    error
}

func (e *ProviderQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider query failed: group=%s type=%s: %v", e.Group, e.Tag, e.Err)
	}
	return fmt.Sprintf("provider query failed: group=%s type=%s status=%s", e.Group, e.Tag, e.Status)
}

func (e *ProviderQueryError) Is(target error) bool { return target == ErrProviderQuery }

func (e *ProviderQueryError) Unwrap() error { return e.Err }

// GeocodingError reports a geocoder failure other than "not found".
type GeocodingError struct {
	Status models.ProviderStatus
	Err    error
}

func (e *GeocodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocoding failed: %v", e.Err)
	}
	return fmt.Sprintf("geocoding failed: status=%s", e.Status)
}

func (e *GeocodingError) Is(target error) bool { return target == ErrGeocoding }

func (e *GeocodingError) Unwrap() error { return e.Err }
