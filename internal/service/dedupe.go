package service

import (
	"math"

	"sensitive-places-api/internal/models"
)

type coordKey struct {
	lat, lng uint64
}

func keyOf(c models.Coordinates) coordKey {
	return coordKey{lat: math.Float64bits(c.Lat), lng: math.Float64bits(c.Lng)}
}

// Dedupe removes duplicate raw places, keeping the first occurrence. Entries
// sharing a non-empty provider id collapse first, then entries whose
// coordinates are bit-identical. Entries with neither a coordinate nor a name
// are dropped. Places without a coordinate only take part in the id pass.
func Dedupe(raw []models.RawPlace) []models.RawPlace {
	seenIDs := make(map[string]struct{}, len(raw))
	byID := make([]models.RawPlace, 0, len(raw))
	for _, p := range raw {
		if p.Location == nil && p.Name == "" {
			continue
		}
		if p.ID != "" {
			if _, dup := seenIDs[p.ID]; dup {
				continue
			}
			seenIDs[p.ID] = struct{}{}
		}
		byID = append(byID, p)
	}

	seenCoords := make(map[coordKey]struct{}, len(byID))
	out := make([]models.RawPlace, 0, len(byID))
	for _, p := range byID {
		if p.Location != nil {
			k := keyOf(*p.Location)
			if _, dup := seenCoords[k]; dup {
				continue
			}
			seenCoords[k] = struct{}{}
		}
		out = append(out, p)
	}
	return out
}
