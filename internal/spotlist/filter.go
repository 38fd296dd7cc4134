// Package spotlist собирает список спотов для отображения: фильтрация по поиску,
// статусу и типу вылазки, сортировка от новых к старым и рендер карточек.
package spotlist

import (
	"slices"
	"strings"

	"github.com/shenikar/spot_tracker/internal/models"
)

// Filter - параметры списка. Пустые поля не фильтруют.
type Filter struct {
	Search      string
	Status      string
	ExploreType string
}

// IsEmpty сообщает, что фильтр пропускает все записи
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && f.Status == "" && f.ExploreType == ""
}

// Apply возвращает новый слайс спотов, подходящих под фильтр, отсортированный
// по created_at по убыванию. Входной слайс не изменяется.
func Apply(spots []*models.Spot, f Filter) []*models.Spot {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]*models.Spot, 0, len(spots))
	for _, s := range spots {
		if s == nil {
			continue
		}
		if term != "" && !matches(s, term) {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.ExploreType != "" && s.ExploreType != f.ExploreType {
			continue
		}
		filtered = append(filtered, s)
	}

	slices.SortStableFunc(filtered, func(a, b *models.Spot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return filtered
}

func matches(s *models.Spot, term string) bool {
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Location), term) ||
		strings.Contains(strings.ToLower(s.Notes), term)
}
