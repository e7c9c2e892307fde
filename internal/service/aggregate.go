package service

import "sensitive-places-api/internal/models"

// Aggregate builds the final SearchResult. TotalCount is fixed here.
func Aggregate(sensitive, betting []models.Location) models.SearchResult {
	if sensitive == nil {
		sensitive = []models.Location{}
	}
	if betting == nil {
		betting = []models.Location{}
	}
	return models.SearchResult{
		SensitivePlaces: sensitive,
		BettingShops:    betting,
		TotalCount:      len(sensitive) + len(betting),
	}
}
