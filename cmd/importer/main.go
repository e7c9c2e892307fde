package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"sensitive-places-api/internal/config"
	"sensitive-places-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	kindPlaces    = "places"
	kindAddresses = "addresses"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	kind := flag.String("kind", kindPlaces, "What the file holds: places or addresses")
	country := flag.String("country", "", "Country code for addresses (defaults to GEOCODE_COUNTRY)")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}
	if *kind != kindPlaces && *kind != kindAddresses {
		fmt.Printf("Error: --kind must be %q or %q\n", kindPlaces, kindAddresses)
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogger(cfg)
	if *country == "" {
		*country = cfg.GeocodeCountry
	}

	log.Info().Str("file", *file).Str("kind", *kind).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	// Ensure tables exist
	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	var (
		table    string
		expected int
		inserted int64
	)
	switch *kind {
	case kindPlaces:
		records, err := parsePlaces(f)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse places")
		}
		log.Info().Int("records", len(records)).Msg("parsed places")
		table, expected = "places", len(records)
		inserted, err = repository.CopyPlaces(ctx, conn, records)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot insert places")
		}
	case kindAddresses:
		records, err := parseAddresses(f, *country)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse addresses")
		}
		log.Info().Int("records", len(records)).Msg("parsed addresses")
		table, expected = "addresses", len(records)
		inserted, err = repository.CopyAddresses(ctx, conn, records)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot insert addresses")
		}
	}

	if inserted != int64(expected) {
		log.Fatal().Int64("inserted", inserted).Int("expected", expected).Msg("record count mismatch")
	}

	// Verify data
	if err := verifyImport(ctx, conn, table); err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}

	log.Info().Int64("records", inserted).Str("table", table).Msg("successfully imported")
}

func verifyImport(ctx context.Context, conn *pgx.Conn, table string) error {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	// Check a sample geom
	var geom string
	err = conn.QueryRow(ctx, "SELECT ST_AsText(geom) FROM "+pgx.Identifier{table}.Sanitize()+" WHERE geom IS NOT NULL LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	log.Info().Int("total", count).Str("sample_geom", geom).Str("table", table).Msg("verified import")
	return nil
}
