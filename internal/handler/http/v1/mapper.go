package v1

import (
	"github.com/shenikar/spot_tracker/internal/maps"
	"github.com/shenikar/spot_tracker/internal/models"
)

// DTOToSpotModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToSpotModel(dto any) *models.Spot {
	switch v := dto.(type) {
	case CreateSpotRequest:
		return &models.Spot{
			Name:        v.Name,
			Location:    v.Location,
			Tier:        v.Tier,
			Status:      v.Status,
			ExploreType: v.ExploreType,
			Security:    v.Security,
			Squatters:   v.Squatters,
			Rating:      v.Rating,
			Again:       v.Again,
			Notes:       v.Notes,
		}
	case UpdateSpotRequest:
		return &models.Spot{
			Name:        v.Name,
			Location:    v.Location,
			Tier:        v.Tier,
			Status:      v.Status,
			ExploreType: v.ExploreType,
			Security:    v.Security,
			Squatters:   v.Squatters,
			Rating:      v.Rating,
			Again:       v.Again,
			Notes:       v.Notes,
		}
	}
	return nil
}

// ModelToSpotResponse преобразует доменную модель в DTO для ответа
func ModelToSpotResponse(model *models.Spot) *SpotResponse {
	return &SpotResponse{
		ID:           model.ID,
		Name:         model.Name,
		Location:     model.Location,
		Tier:         model.Tier,
		TierLabel:    models.TierLabel(model.Tier),
		Status:       model.Status,
		StatusLabel:  models.StatusLabel(model.Status),
		ExploreType:  model.ExploreType,
		ExploreLabel: models.ExploreLabel(model.ExploreType),
		Security:     model.Security,
		Squatters:    model.Squatters,
		Rating:       model.Rating,
		Again:        model.Again,
		RatingLine:   models.RatingLine(model),
		Notes:        model.Notes,
		EmbedURL:     maps.EmbedURL(model.Location),
		OpenURL:      maps.OpenURL(model.Location),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToSpotResponses преобразует слайс моделей в слайс DTO
func ModelsToSpotResponses(spots []*models.Spot) []*SpotResponse {
	responses := make([]*SpotResponse, len(spots))
	for i, model := range spots {
		responses[i] = ModelToSpotResponse(model)
	}
	return responses
}

// ModelToStatsResponse преобразует сводку в DTO для ответа
func ModelToStatsResponse(stats *models.SpotStats) StatsResponse {
	return StatsResponse{
		Total:         stats.Total,
		Completed:     stats.Completed,
		Pending:       stats.Pending,
		Rated:         stats.Rated,
		AverageRating: stats.AverageRating,
		ByExploreType: stats.ByExploreType,
		ByTier:        stats.ByTier,
	}
}
