package models

import "fmt"

// ProviderStatus is the status string a place-search or geocoding backend
// attaches to a response.
type ProviderStatus string

const (
	StatusOK          ProviderStatus = "OK"
	StatusZeroResults ProviderStatus = "ZERO_RESULTS"
)

// RawPlace is a place as returned by the provider, before classification.
// Location is nil when the provider did not resolve a coordinate.
type RawPlace struct {
	ID       string
	Name     string
	Location *Coordinates
	Tags     []string
	Locality string
}

// PlaceQuery is a single category-scoped nearby search.
type PlaceQuery struct {
	Location Coordinates
	Radius   int
	Type     string
}

// PlaceSearchResponse is the provider answer to a PlaceQuery.
type PlaceSearchResponse struct {
	Status  ProviderStatus
	Results []RawPlace
}

// GeocodeQuery resolves free-text address input, restricted to a country.
type GeocodeQuery struct {
	Address string
	Country string
}

// GeocodeResult is the geocoder answer. Location is meaningful only when Found.
type GeocodeResult struct {
	Found    bool
	Location Coordinates
}

// StatusError reports a backend response whose status is neither OK nor
// ZERO_RESULTS.
type StatusError struct {
	Status  ProviderStatus
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("provider status %s", e.Status)
}
