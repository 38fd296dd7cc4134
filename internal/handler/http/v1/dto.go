package v1

import (
	"time"
)

// CreateSpotRequest DTO для создания спота
// @Description DTO для создания спота
type CreateSpotRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Location    string `json:"location" validate:"required,max=2048"`
	Tier        string `json:"tier,omitempty" validate:"omitempty,oneof=no_power graffiti_no_power graffiti_power no_graffiti"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=pending completed to_go been"`
	ExploreType string `json:"explore_type,omitempty" validate:"omitempty,oneof=urbex roofing drain mixed other"`
	Security    string `json:"security,omitempty" validate:"omitempty,oneof=yes no"`
	Squatters   string `json:"squatters,omitempty" validate:"omitempty,oneof=yes no"`
	Rating      int    `json:"rating" validate:"min=0,max=5"`
	Again       string `json:"again,omitempty" validate:"omitempty,oneof=yes no"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateSpotRequest DTO для редактирования спота. Поля перезаписываются целиком.
// @Description DTO для редактирования спота
type UpdateSpotRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Location    string `json:"location" validate:"required,max=2048"`
	Tier        string `json:"tier,omitempty" validate:"omitempty,oneof=no_power graffiti_no_power graffiti_power no_graffiti"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=pending completed to_go been"`
	ExploreType string `json:"explore_type,omitempty" validate:"omitempty,oneof=urbex roofing drain mixed other"`
	Security    string `json:"security,omitempty" validate:"omitempty,oneof=yes no"`
	Squatters   string `json:"squatters,omitempty" validate:"omitempty,oneof=yes no"`
	Rating      int    `json:"rating" validate:"min=0,max=5"`
	Again       string `json:"again,omitempty" validate:"omitempty,oneof=yes no"`
	Notes       string `json:"notes,omitempty"`
}

// SpotResponse DTO для ответа с информацией о споте
// @Description DTO для ответа с информацией о споте
type SpotResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Tier         string    `json:"tier"`
	TierLabel    string    `json:"tier_label"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	ExploreType  string    `json:"explore_type"`
	ExploreLabel string    `json:"explore_label"`
	Security     string    `json:"security"`
	Squatters    string    `json:"squatters"`
	Rating       int       `json:"rating"`
	Again        string    `json:"again"`
	RatingLine   string    `json:"rating_line,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	EmbedURL     string    `json:"embed_url"`
	OpenURL      string    `json:"open_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total         int            `json:"total"`
	Completed     int            `json:"completed"`
	Pending       int            `json:"pending"`
	Rated         int            `json:"rated"`
	AverageRating float64        `json:"average_rating"`
	ByExploreType map[string]int `json:"by_explore_type"`
	ByTier        map[string]int `json:"by_tier"`
}

// ClearResponse DTO для ответа на массовое удаление
// @Description DTO для ответа на массовое удаление
type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
