package repository

import (
	"context"
	"errors"
	"fmt"

	"sensitive-places-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

// maxNearbyResults mirrors the page size of hosted place-search services.
const maxNearbyResults = 60

// Schema creates the gazetteer tables used by the PostGIS backend.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS places (
		id BIGSERIAL PRIMARY KEY,
		place_id VARCHAR(255),
		name VARCHAR(255),
		locality VARCHAR(255),
		tags TEXT[] NOT NULL DEFAULT '{}',
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
	CREATE INDEX IF NOT EXISTS places_tags_idx ON places USING GIN (tags);

	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		full_address TEXT NOT NULL,
		country CHAR(2) NOT NULL DEFAULT 'IT',
		full_address_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('italian', full_address)
		) STORED,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS addresses_geom_idx ON addresses USING GIST (geom);
	CREATE INDEX IF NOT EXISTS addresses_full_address_tsvector_idx ON addresses USING GIN (full_address_tsvector);
`

// Execer is satisfied by *pgx.Conn and *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the gazetteer tables if they do not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Repository is a place-search and geocoding backend over a PostGIS gazetteer.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// NearbySearch returns the places tagged q.Type within q.Radius meters of
// q.Location, nearest first.
func (r *Repository) NearbySearch(ctx context.Context, q models.PlaceQuery) (models.PlaceSearchResponse, error) {
	sql := `
		SELECT
			COALESCE(place_id, ''),
			COALESCE(name, ''),
			COALESCE(locality, ''),
			tags,
			ST_AsEWKB(geom::geometry)
		FROM places
		WHERE $3 = ANY(tags)
		  AND ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $4)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT $5
	`

	rows, err := r.db.Query(ctx, sql, q.Location.Lat, q.Location.Lng, q.Type, float64(q.Radius), maxNearbyResults)
	if err != nil {
		return models.PlaceSearchResponse{}, fmt.Errorf("repository: failed to execute nearby query: %w", err)
	}
	defer rows.Close()

	var places []models.RawPlace
	for rows.Next() {
		var p models.RawPlace
		var point ewkb.Point
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Locality,
			&p.Tags,
			&point,
		)
		if err != nil {
			return models.PlaceSearchResponse{}, fmt.Errorf("repository: failed to scan place: %w", err)
		}
		p.Location = coordinatesOf(point)
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return models.PlaceSearchResponse{}, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	if len(places) == 0 {
		return models.PlaceSearchResponse{Status: models.StatusZeroResults}, nil
	}
	return models.PlaceSearchResponse{Status: models.StatusOK, Results: places}, nil
}

// Geocode performs a full-text search on the addresses table and returns the
// best ranked match.
func (r *Repository) Geocode(ctx context.Context, q models.GeocodeQuery) (models.GeocodeResult, error) {
	sql := `
		SELECT ST_AsEWKB(geom::geometry)
		FROM addresses
		WHERE ($2 = '' OR country = $2)
		  AND geom IS NOT NULL
		  AND full_address_tsvector @@ plainto_tsquery('italian', $1)
		ORDER BY ts_rank(full_address_tsvector, plainto_tsquery('italian', $1)) DESC
		LIMIT 1
	`

	var point ewkb.Point
	err := r.db.QueryRow(ctx, sql, q.Address, q.Country).Scan(&point)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.GeocodeResult{Found: false}, nil
		}
		return models.GeocodeResult{}, fmt.Errorf("repository: failed to execute geocode query: %w", err)
	}

	loc := coordinatesOf(point)
	if loc == nil {
		return models.GeocodeResult{Found: false}, nil
	}
	return models.GeocodeResult{Found: true, Location: *loc}, nil
}

// Probe checks database connectivity.
func (r *Repository) Probe(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: ping: %w", err)
	}
	return nil
}

func coordinatesOf(p ewkb.Point) *models.Coordinates {
	if p.Point == nil || len(p.FlatCoords()) < 2 {
		return nil
	}
	return &models.Coordinates{Lat: p.Y(), Lng: p.X()}
}
