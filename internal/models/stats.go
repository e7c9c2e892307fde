package models

// CategoryCount is the number of locations of one category in a result.
type CategoryCount struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

// SearchStats summarises a SearchResult per category.
// SensitiveCount excludes places classified as other.
type SearchStats struct {
	SensitiveCount int             `json:"sensitiveCount"`
	BettingCount   int             `json:"bettingCount"`
	Categories     []CategoryCount `json:"categories"`
}

// ComputeStats counts the locations of r per category. Only categories with at
// least one location are listed, in taxonomy order.
func ComputeStats(r SearchResult) SearchStats {
	counts := make(map[Category]int, len(Categories))
	sensitive := 0
	for _, l := range r.SensitivePlaces {
		counts[l.Category]++
		if l.Category != CategoryOther {
			sensitive++
		}
	}
	for _, l := range r.BettingShops {
		counts[l.Category]++
	}

	stats := SearchStats{
		SensitiveCount: sensitive,
		BettingCount:   len(r.BettingShops),
		Categories:     []CategoryCount{},
	}
	total := sensitive + len(r.BettingShops)
	for _, c := range Categories {
		n := counts[c]
		if n == 0 {
			continue
		}
		cc := CategoryCount{Category: c, Label: c.Info().Label, Count: n}
		if total > 0 {
			cc.Percentage = float64(n) / float64(total) * 100
		}
		stats.Categories = append(stats.Categories, cc)
	}
	return stats
}
