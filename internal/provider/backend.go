// Package provider selects and boots the place-search backend of a process.
package provider

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"sensitive-places-api/internal/config"
	"sensitive-places-api/internal/models"
	"sensitive-places-api/internal/provider/google"
	"sensitive-places-api/internal/repository"
)

// Backend answers nearby place queries and geocoding requests.
type Backend interface {
	NearbySearch(ctx context.Context, q models.PlaceQuery) (models.PlaceSearchResponse, error)
	Geocode(ctx context.Context, q models.GeocodeQuery) (models.GeocodeResult, error)
	Prober
}

// NewBackend builds the backend named by cfg.PlacesBackend. The returned
// close func releases its resources and is never nil.
func NewBackend(ctx context.Context, cfg config.Config) (Backend, func(), error) {
	switch cfg.PlacesBackend {
	case config.BackendGoogle:
		client := google.NewClient(cfg.GoogleMapsAPIKey,
			google.WithBaseURL(cfg.GoogleMapsURL),
			google.WithTimeout(cfg.ProviderTimeout),
			google.WithRateLimit(cfg.ProviderRateLimit),
		)
		log.Info().Str("backend", cfg.PlacesBackend).Msg("provider: using google maps")
		return client, func() {}, nil

	case config.BackendPostGIS:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, func() {}, fmt.Errorf("provider: cannot connect to db: %w", err)
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		log.Info().Str("backend", cfg.PlacesBackend).Msg("provider: using postgis gazetteer")
		return repository.NewRepository(pool), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("provider: unknown backend %q", cfg.PlacesBackend)
	}
}
