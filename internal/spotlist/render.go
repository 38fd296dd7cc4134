package spotlist

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/shenikar/spot_tracker/internal/maps"
	"github.com/shenikar/spot_tracker/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var cardsTemplate = template.Must(template.ParseFS(templatesFS, "templates/cards.html"))

// Card - данные одной карточки спота
type Card struct {
	ID             int64
	Name           string
	Location       string
	StatusLabel    string
	TierLabel      string
	ExploreLabel   string
	SecurityLabel  string
	SquattersLabel string
	RatingLine     string
	Notes          string
	EmbedURL       string
	OpenURL        string
}

type cardsView struct {
	Cards []Card
	Error string
}

// NewCard переводит спот в представление карточки
func NewCard(s *models.Spot) Card {
	return Card{
		ID:             s.ID,
		Name:           s.Name,
		Location:       s.Location,
		StatusLabel:    models.StatusLabel(s.Status),
		TierLabel:      models.TierLabel(s.Tier),
		ExploreLabel:   models.ExploreLabel(s.ExploreType),
		SecurityLabel:  models.SecurityLabel(s.Security),
		SquattersLabel: models.SquattersLabel(s.Squatters),
		RatingLine:     models.RatingLine(s),
		Notes:          s.Notes,
		EmbedURL:       maps.EmbedURL(s.Location),
		OpenURL:        maps.OpenURL(s.Location),
	}
}

// RenderCards пишет html-разметку списка карточек. errMsg выводится над списком;
// при пустом списке рендерится заглушка.
func RenderCards(w io.Writer, spots []*models.Spot, errMsg string) error {
	view := cardsView{
		Cards: make([]Card, 0, len(spots)),
		Error: errMsg,
	}
	for _, s := range spots {
		view.Cards = append(view.Cards, NewCard(s))
	}
	if err := cardsTemplate.ExecuteTemplate(w, "cards", view); err != nil {
		return fmt.Errorf("failed to render spot cards: %w", err)
	}
	return nil
}
