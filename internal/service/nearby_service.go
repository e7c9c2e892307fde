package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"sensitive-places-api/internal/models"
)

// AddressResolver resolves an address to coordinates.
type AddressResolver interface {
	Geocode(ctx context.Context, address string) (models.Coordinates, error)
}

// SearchRequest is a single nearby search, either by address or by center.
// Center takes precedence when both are set.
type SearchRequest struct {
	Address string
	Center  *models.Coordinates
	Radius  int
}

// NearbyService finds sensitive places and betting shops around a point.
type NearbyService struct {
	orchestrator  *Orchestrator
	classifier    *Classifier
	resolver      AddressResolver
	sensitiveTags []string
	bettingTags   []string
}

// NearbyOptions configures the tag groups and query fan-out of a NearbyService.
type NearbyOptions struct {
	SensitiveTags  []string
	BettingTags    []string
	MaxConcurrency int
	TagTable       []TagMapping
}

// NewNearbyService wires the aggregation engine on top of a place searcher.
func NewNearbyService(searcher PlaceSearcher, resolver AddressResolver, opts NearbyOptions) *NearbyService {
	if len(opts.SensitiveTags) == 0 {
		opts.SensitiveTags = DefaultSensitiveTags
	}
	if len(opts.BettingTags) == 0 {
		opts.BettingTags = DefaultBettingTags
	}
	if len(opts.TagTable) == 0 {
		opts.TagTable = DefaultTagTable
	}
	return &NearbyService{
		orchestrator:  NewOrchestrator(searcher, opts.MaxConcurrency),
		classifier:    NewClassifier(NewTypeMapper(opts.TagTable)),
		resolver:      resolver,
		sensitiveTags: opts.SensitiveTags,
		bettingTags:   opts.BettingTags,
	}
}

// FindNearbyPlaces queries both tag groups around center and returns the
// classified, deduplicated and mutually exclusive result. Any failing provider
// query fails the whole search.
func (s *NearbyService) FindNearbyPlaces(ctx context.Context, center models.Coordinates, radius int, sensitiveTags, bettingTags []string) (*models.SearchResult, error) {
	if !center.Valid() {
		return nil, fmt.Errorf("service: %w: %s", ErrInvalidCoordinates, center)
	}
	if radius < 0 {
		return nil, fmt.Errorf("service: %w: %d", ErrInvalidRadius, radius)
	}

	raw, err := s.orchestrator.Search(ctx, center, radius, sensitiveTags, bettingTags)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search places: %w", err)
	}

	betting := models.CategoryBettingShop
	sensitivePlaces := s.classifier.Classify(raw.Sensitive, center, nil)
	bettingShops := s.classifier.Classify(FilterByTags(raw.Betting, bettingTags), center, &betting)

	sensitivePlaces, bettingShops = ResolveExclusivity(sensitivePlaces, bettingShops)
	result := Aggregate(sensitivePlaces, bettingShops)

	log.Info().
		Stringer("center", center).
		Int("radius", radius).
		Int("sensitive", len(result.SensitivePlaces)).
		Int("betting", len(result.BettingShops)).
		Msg("service: nearby search completed")
	return &result, nil
}

// Search runs req with the configured tag groups, geocoding the address first
// when no center is given.
func (s *NearbyService) Search(ctx context.Context, req SearchRequest) (*models.NearbySearch, error) {
	var center models.Coordinates
	switch {
	case req.Center != nil:
		center = *req.Center
	case strings.TrimSpace(req.Address) == "":
		return nil, fmt.Errorf("service: %w", ErrEmptyAddress)
	default:
		c, err := s.resolver.Geocode(ctx, req.Address)
		if err != nil {
			return nil, err
		}
		center = c
	}

	result, err := s.FindNearbyPlaces(ctx, center, req.Radius, s.sensitiveTags, s.bettingTags)
	if err != nil {
		return nil, err
	}
	return &models.NearbySearch{
		Center:       center,
		Radius:       req.Radius,
		SearchResult: *result,
		Stats:        models.ComputeStats(*result),
	}, nil
}
