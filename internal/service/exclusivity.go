package service

import "sensitive-places-api/internal/models"

// ResolveExclusivity drops from sensitive every location whose coordinates
// are bit-identical to a betting location, the same match Dedupe uses. Betting
// always wins; betting is returned unchanged. Nearby but unequal coordinates
// are not reconciled.
func ResolveExclusivity(sensitive, betting []models.Location) ([]models.Location, []models.Location) {
	taken := make(map[coordKey]struct{}, len(betting))
	for _, b := range betting {
		taken[keyOf(b.Coordinates)] = struct{}{}
	}
	kept := make([]models.Location, 0, len(sensitive))
	for _, s := range sensitive {
		if _, clash := taken[keyOf(s.Coordinates)]; clash {
			continue
		}
		kept = append(kept, s)
	}
	return kept, betting
}
