package repository

import (
	"context"
	"fmt"

	"sensitive-places-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

// Copier is satisfied by *pgx.Conn and *pgxpool.Pool.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// AddressRecord is one geocodable address.
type AddressRecord struct {
	FullAddress string
	Country     string
	Location    models.Coordinates
}

// CopyPlaces bulk-loads places into the places table.
func CopyPlaces(ctx context.Context, db Copier, places []models.RawPlace) (int64, error) {
	n, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"place_id", "name", "locality", "tags", "geom"},
		pgx.CopyFromSlice(len(places), func(i int) ([]any, error) {
			p := places[i]
			var point any
			if p.Location != nil {
				b, err := encodePoint(*p.Location)
				if err != nil {
					return nil, err
				}
				point = b
			}
			tags := p.Tags
			if tags == nil {
				tags = []string{}
			}
			return []any{nilIfEmpty(p.ID), p.Name, nilIfEmpty(p.Locality), tags, point}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy places: %w", err)
	}
	return n, nil
}

// CopyAddresses bulk-loads addresses into the addresses table.
func CopyAddresses(ctx context.Context, db Copier, records []AddressRecord) (int64, error) {
	n, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"addresses"},
		[]string{"full_address", "country", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			b, err := encodePoint(r.Location)
			if err != nil {
				return nil, err
			}
			return []any{r.FullAddress, r.Country, b}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy addresses: %w", err)
	}
	return n, nil
}

// encodePoint returns the EWKB encoding of c with SRID 4326 (lon lat order).
func encodePoint(c models.Coordinates) ([]byte, error) {
	p := geom.NewPointFlat(geom.XY, []float64{c.Lng, c.Lat}).SetSRID(4326)
	b, err := ewkb.Marshal(p, ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("repository: encode point: %w", err)
	}
	return b, nil
}

// nilIfEmpty returns nil for empty strings, allowing NULL storage in Postgres.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
