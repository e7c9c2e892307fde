//go:build integration

package repository

import (
	"context"
	"testing"

	"sensitive-places-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func coords(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	require.NoError(t, EnsureSchema(ctx, pool))

	// Insert test data around Piazza Venezia
	_, err = CopyPlaces(ctx, pool, []models.RawPlace{
		{ID: "school-1", Name: "Liceo Visconti", Location: coords(41.8985, 12.4790), Tags: []string{"school", "secondary_school"}, Locality: "Piazza del Collegio Romano 4, Roma"},
		{ID: "casino-1", Name: "Sala Giochi Corso", Location: coords(41.8990, 12.4800), Tags: []string{"casino"}, Locality: "Via del Corso 100, Roma"},
		{ID: "school-far", Name: "Scuola Lontana", Location: coords(41.9400, 12.5200), Tags: []string{"school"}},
	})
	require.NoError(t, err)

	_, err = CopyAddresses(ctx, pool, []AddressRecord{
		{FullAddress: "Piazza Venezia, 00186 Roma RM", Country: "IT", Location: models.Coordinates{Lat: 41.8960, Lng: 12.4823}},
		{FullAddress: "Piazza del Duomo, 20122 Milano MI", Country: "IT", Location: models.Coordinates{Lat: 45.4642, Lng: 9.1900}},
	})
	require.NoError(t, err)

	return pool
}

func TestRepository_NearbySearch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	center := models.Coordinates{Lat: 41.8960, Lng: 12.4823}

	tests := []struct {
		name           string
		query          models.PlaceQuery
		expectedStatus models.ProviderStatus
		expectedIDs    []string
	}{
		{
			name:           "school within radius",
			query:          models.PlaceQuery{Location: center, Radius: 1000, Type: "school"},
			expectedStatus: models.StatusOK,
			expectedIDs:    []string{"school-1"},
		},
		{
			name:           "secondary tag matches",
			query:          models.PlaceQuery{Location: center, Radius: 1000, Type: "secondary_school"},
			expectedStatus: models.StatusOK,
			expectedIDs:    []string{"school-1"},
		},
		{
			name:           "wider radius picks up far school",
			query:          models.PlaceQuery{Location: center, Radius: 10000, Type: "school"},
			expectedStatus: models.StatusOK,
			expectedIDs:    []string{"school-1", "school-far"},
		},
		{
			name:           "casino",
			query:          models.PlaceQuery{Location: center, Radius: 1000, Type: "casino"},
			expectedStatus: models.StatusOK,
			expectedIDs:    []string{"casino-1"},
		},
		{
			name:           "no match for tag",
			query:          models.PlaceQuery{Location: center, Radius: 1000, Type: "church"},
			expectedStatus: models.StatusZeroResults,
		},
		{
			name:           "radius too small",
			query:          models.PlaceQuery{Location: center, Radius: 10, Type: "school"},
			expectedStatus: models.StatusZeroResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := repo.NearbySearch(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.Status)

			var ids []string
			for _, p := range resp.Results {
				ids = append(ids, p.ID)
				assert.NotNil(t, p.Location)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestRepository_NearbySearch_DecodesPlace(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)

	resp, err := repo.NearbySearch(context.Background(), models.PlaceQuery{
		Location: models.Coordinates{Lat: 41.8960, Lng: 12.4823},
		Radius:   1000,
		Type:     "casino",
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	p := resp.Results[0]
	assert.Equal(t, "Sala Giochi Corso", p.Name)
	assert.Equal(t, "Via del Corso 100, Roma", p.Locality)
	assert.Equal(t, []string{"casino"}, p.Tags)
	assert.InDelta(t, 41.8990, p.Location.Lat, 1e-9)
	assert.InDelta(t, 12.4800, p.Location.Lng, 1e-9)
}

func TestRepository_Geocode(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    models.GeocodeQuery
		expected models.GeocodeResult
	}{
		{
			name:     "found",
			query:    models.GeocodeQuery{Address: "Piazza Venezia Roma", Country: "IT"},
			expected: models.GeocodeResult{Found: true, Location: models.Coordinates{Lat: 41.8960, Lng: 12.4823}},
		},
		{
			name:     "found without country",
			query:    models.GeocodeQuery{Address: "Duomo Milano"},
			expected: models.GeocodeResult{Found: true, Location: models.Coordinates{Lat: 45.4642, Lng: 9.1900}},
		},
		{
			name:     "other country",
			query:    models.GeocodeQuery{Address: "Piazza Venezia Roma", Country: "FR"},
			expected: models.GeocodeResult{Found: false},
		},
		{
			name:     "not found",
			query:    models.GeocodeQuery{Address: "Torino", Country: "IT"},
			expected: models.GeocodeResult{Found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Geocode(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Found, got.Found)
			if tt.expected.Found {
				assert.InDelta(t, tt.expected.Location.Lat, got.Location.Lat, 1e-9)
				assert.InDelta(t, tt.expected.Location.Lng, got.Location.Lng, 1e-9)
			}
		})
	}
}

func TestRepository_Probe(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	assert.NoError(t, NewRepository(pool).Probe(context.Background()))
}
