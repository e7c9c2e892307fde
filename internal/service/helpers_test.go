package service

import (
	"context"
	"sync"

	"sensitive-places-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, q models.GeocodeQuery) (models.GeocodeResult, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.GeocodeResult), args.Error(1)
}

// MockAddressResolver is a mock implementation of the AddressResolver interface
type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.Coordinates), args.Error(1)
}

// fakeSearcher answers nearby searches from a per-tag table and records every query.
type fakeSearcher struct {
	mu        sync.Mutex
	responses map[string]models.PlaceSearchResponse
	errs      map[string]error
	queries   []models.PlaceQuery
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		responses: map[string]models.PlaceSearchResponse{},
		errs:      map[string]error{},
	}
}

func (f *fakeSearcher) on(tag string, places ...models.RawPlace) *fakeSearcher {
	f.responses[tag] = models.PlaceSearchResponse{Status: models.StatusOK, Results: places}
	return f
}

func (f *fakeSearcher) status(tag string, status models.ProviderStatus) *fakeSearcher {
	f.responses[tag] = models.PlaceSearchResponse{Status: status}
	return f
}

func (f *fakeSearcher) NearbySearch(_ context.Context, q models.PlaceQuery) (models.PlaceSearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if err, ok := f.errs[q.Type]; ok {
		return models.PlaceSearchResponse{}, err
	}
	if resp, ok := f.responses[q.Type]; ok {
		return resp, nil
	}
	return models.PlaceSearchResponse{Status: models.StatusZeroResults}, nil
}

func (f *fakeSearcher) recorded() []models.PlaceQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PlaceQuery(nil), f.queries...)
}

func at(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

func place(id, name string, loc *models.Coordinates, tags ...string) models.RawPlace {
	return models.RawPlace{ID: id, Name: name, Location: loc, Tags: tags}
}
