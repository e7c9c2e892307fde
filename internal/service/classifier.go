package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sensitive-places-api/internal/models"
)

// Classifier turns raw provider places into distance-annotated Locations.
type Classifier struct {
	mapper *TypeMapper
	newID  func() string
}

// NewClassifier creates a classifier backed by mapper.
func NewClassifier(mapper *TypeMapper) *Classifier {
	return &Classifier{
		mapper: mapper,
		newID:  func() string { return "place-" + uuid.NewString() },
	}
}

// Classify deduplicates raw and converts every usable entry into a Location.
// Entries missing a coordinate or a name are dropped. When override is set
// every location gets that category.
func (c *Classifier) Classify(raw []models.RawPlace, center models.Coordinates, override *models.Category) []models.Location {
	unique := Dedupe(raw)
	locations := make([]models.Location, 0, len(unique))
	malformed := 0
	for _, p := range unique {
		if p.Location == nil || p.Name == "" {
			malformed++
			continue
		}
		id := p.ID
		if id == "" {
			id = c.newID()
		}
		locations = append(locations, models.Location{
			ID:          id,
			Name:        p.Name,
			Category:    c.mapper.Classify(p.Tags, override),
			Coordinates: *p.Location,
			Distance:    Distance(center, *p.Location),
			Address:     p.Locality,
		})
	}
	if malformed > 0 {
		log.Debug().Int("dropped", malformed).Msg("service: dropped places without coordinates or name")
	}
	return locations
}

// FilterByTags keeps the places carrying at least one tag from allowed.
func FilterByTags(raw []models.RawPlace, allowed []string) []models.RawPlace {
	set := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		set[t] = struct{}{}
	}
	out := make([]models.RawPlace, 0, len(raw))
	for _, p := range raw {
		for _, t := range p.Tags {
			if _, ok := set[t]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
