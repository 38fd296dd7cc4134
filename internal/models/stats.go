package models

// SpotStats - сводка по коллекции спотов
type SpotStats struct {
	Total         int            `json:"total"`
	Completed     int            `json:"completed"`
	Pending       int            `json:"pending"`
	Rated         int            `json:"rated"`
	AverageRating float64        `json:"average_rating"`
	ByExploreType map[string]int `json:"by_explore_type"`
	ByTier        map[string]int `json:"by_tier"`
}

// ComputeStats считает сводку по слайсу спотов
func ComputeStats(spots []*Spot) *SpotStats {
	stats := &SpotStats{
		ByExploreType: make(map[string]int),
		ByTier:        make(map[string]int),
	}

	ratingSum := 0
	for _, s := range spots {
		stats.Total++
		if s.IsCompleted() {
			stats.Completed++
			if s.Rating > 0 {
				stats.Rated++
				ratingSum += s.Rating
			}
		} else {
			stats.Pending++
		}
		stats.ByExploreType[s.ExploreType]++
		stats.ByTier[s.Tier]++
	}

	if stats.Rated > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.Rated)
	}
	return stats
}
