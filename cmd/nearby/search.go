package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sensitive-places-api/internal/config"
	"sensitive-places-api/internal/models"
	"sensitive-places-api/internal/provider"
	"sensitive-places-api/internal/service"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search around an address or coordinate pair",
	Long:  "Geocodes --address (or takes --lat/--lng) and prints the nearby sensitive places and betting shops as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		req, err := buildSearchRequest(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		backend, closeBackend, err := provider.NewBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeBackend()

		if err := provider.StartReadiness(ctx, backend, cfg.ProviderTimeout).Wait(ctx); err != nil {
			return err
		}

		geocoder := service.NewGeoCodeService(backend, cfg.GeocodeCountry)
		nearby := service.NewNearbyService(backend, geocoder, service.NearbyOptions{
			SensitiveTags:  cfg.SensitiveTags,
			BettingTags:    cfg.BettingTags,
			MaxConcurrency: cfg.MaxConcurrentQueries,
		})

		result, err := nearby.Search(ctx, req)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	addSearchFlags(searchCmd.Flags())
	searchCmd.MarkFlagsRequiredTogether("lat", "lng")
	searchCmd.MarkFlagsMutuallyExclusive("address", "lat")
}

func addSearchFlags(f *pflag.FlagSet) {
	f.String("address", "", "free-text address to search around")
	f.Float64("lat", 0, "center latitude")
	f.Float64("lng", 0, "center longitude")
	f.Int("radius", 0, "search radius in meters (defaults to DEFAULT_RADIUS)")
}

// buildSearchRequest turns the parsed flags into a request, applying the
// configured default radius and bounds.
func buildSearchRequest(f *pflag.FlagSet, c config.Config) (service.SearchRequest, error) {
	address, _ := f.GetString("address")
	req := service.SearchRequest{
		Address: strings.TrimSpace(address),
		Radius:  c.DefaultRadius,
	}
	if f.Changed("radius") {
		req.Radius, _ = f.GetInt("radius")
	}
	if req.Radius < c.MinRadius || req.Radius > c.MaxRadius {
		return req, fmt.Errorf("radius must be between %d and %d meters", c.MinRadius, c.MaxRadius)
	}

	if f.Changed("lat") || f.Changed("lng") {
		lat, _ := f.GetFloat64("lat")
		lng, _ := f.GetFloat64("lng")
		center := models.Coordinates{Lat: lat, Lng: lng}
		if !center.Valid() {
			return req, fmt.Errorf("coordinates out of range: %s", center)
		}
		req.Center = &center
		return req, nil
	}
	if req.Address == "" {
		return req, errors.New("one of --address or --lat/--lng is required")
	}
	return req, nil
}
