package models

import (
	"errors"
	"strings"
	"time"
)

// ErrSpotNotFound возвращается хранилищем, если спота с таким id нет
var ErrSpotNotFound = errors.New("spot not found")

// ErrMissingRequiredFields - у спота пустое имя или локация
var ErrMissingRequiredFields = errors.New("name and location are required")

// Значения tier
const (
	TierNoPower         = "no_power"
	TierGraffitiNoPower = "graffiti_no_power"
	TierGraffitiPower   = "graffiti_power"
	TierNoGraffiti      = "no_graffiti"
)

// Значения status. pending/completed и to_go/been - два словаря разных версий формы.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusToGo      = "to_go"
	StatusBeen      = "been"
)

// Значения explore_type
const (
	ExploreUrbex   = "urbex"
	ExploreRoofing = "roofing"
	ExploreDrain   = "drain"
	ExploreMixed   = "mixed"
	ExploreOther   = "other"
)

const (
	Yes = "yes"
	No  = "no"
)

const MaxRating = 5

// Spot - одна сохраненная локация с метаданными вылазки
type Spot struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Tier        string    `json:"tier"`
	Status      string    `json:"status"`
	ExploreType string    `json:"explore_type"`
	Security    string    `json:"security"`
	Squatters   string    `json:"squatters"`
	Rating      int       `json:"rating"`
	Again       string    `json:"again"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsCompleted сообщает, отмечен ли спот как посещенный
func (s *Spot) IsCompleted() bool {
	return s.Status == StatusCompleted || s.Status == StatusBeen
}

// Normalize приводит запись к виду, в котором она хранится: обрезает пробелы,
// подставляет значения по умолчанию и обнуляет рейтинг для непосещенных спотов.
func (s *Spot) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Location = strings.TrimSpace(s.Location)
	s.Notes = strings.TrimSpace(s.Notes)

	if s.Tier == "" {
		s.Tier = TierNoPower
	}
	if s.Status == "" {
		s.Status = StatusPending
	}
	if s.ExploreType == "" {
		s.ExploreType = ExploreUrbex
	}
	if s.Security == "" {
		s.Security = No
	}
	if s.Squatters == "" {
		s.Squatters = No
	}
	if s.Again == "" {
		s.Again = No
	}

	if !s.IsCompleted() || s.Rating < 0 {
		s.Rating = 0
	}
	if s.Rating > MaxRating {
		s.Rating = MaxRating
	}
	if s.Rating == 0 {
		s.Again = No
	}
}

// HasRequiredFields - единственная проверка формы: имя и локация не пустые
func (s *Spot) HasRequiredFields() bool {
	return strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.Location) != ""
}
