package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sensitive-places-api/internal/models"
)

const (
	GroupSensitive = "sensitive"
	GroupBetting   = "betting"
)

// PlaceSearcher is the place-search backend consumed by the orchestrator.
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, q models.PlaceQuery) (models.PlaceSearchResponse, error)
}

// RawGroups holds the concatenated raw results of both tag groups.
type RawGroups struct {
	Sensitive []models.RawPlace
	Betting   []models.RawPlace
}

// Orchestrator issues one provider query per tag, across both tag groups.
type Orchestrator struct {
	searcher       PlaceSearcher
	maxConcurrency int
}

// NewOrchestrator creates an orchestrator. maxConcurrency bounds the in-flight
// queries of each group; zero or less means unbounded.
func NewOrchestrator(searcher PlaceSearcher, maxConcurrency int) *Orchestrator {
	return &Orchestrator{searcher: searcher, maxConcurrency: maxConcurrency}
}

// Search runs both tag groups concurrently and joins them. The first failing
// query cancels everything else and no partial result is returned.
func (o *Orchestrator) Search(ctx context.Context, center models.Coordinates, radius int, sensitiveTags, bettingTags []string) (RawGroups, error) {
	var groups RawGroups

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := o.searchGroup(gctx, GroupSensitive, center, radius, sensitiveTags)
		groups.Sensitive = raw
		return err
	})
	g.Go(func() error {
		raw, err := o.searchGroup(gctx, GroupBetting, center, radius, bettingTags)
		groups.Betting = raw
		return err
	})
	if err := g.Wait(); err != nil {
		return RawGroups{}, err
	}
	return groups, nil
}

func (o *Orchestrator) searchGroup(ctx context.Context, group string, center models.Coordinates, radius int, tags []string) ([]models.RawPlace, error) {
	perTag := make([][]models.RawPlace, len(tags))

	g, gctx := errgroup.WithContext(ctx)
	if o.maxConcurrency > 0 {
		g.SetLimit(o.maxConcurrency)
	}
	for i, tag := range tags {
		g.Go(func() error {
			results, err := o.query(gctx, group, models.PlaceQuery{Location: center, Radius: radius, Type: tag})
			if err != nil {
				return err
			}
			perTag[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.RawPlace
	for _, results := range perTag {
		all = append(all, results...)
	}
	log.Debug().
		Str("group", group).
		Int("tags", len(tags)).
		Int("results", len(all)).
		Msg("service: group search completed")
	return all, nil
}

func (o *Orchestrator) query(ctx context.Context, group string, q models.PlaceQuery) ([]models.RawPlace, error) {
	resp, err := o.searcher.NearbySearch(ctx, q)
	if err != nil {
		return nil, &ProviderQueryError{Group: group, Tag: q.Type, Err: fmt.Errorf("service: nearby search: %w", err)}
	}
	switch resp.Status {
	case models.StatusOK:
		return resp.Results, nil
	case models.StatusZeroResults:
		return nil, nil
	default:
		return nil, &ProviderQueryError{Group: group, Tag: q.Type, Status: resp.Status}
	}
}
