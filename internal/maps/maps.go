// Package maps строит ссылки на Google Maps по свободной строке локации и
// извлекает из нее координаты для маркеров.
package maps

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/spot_tracker/internal/models"
)

const (
	embedBaseURL  = "https://www.google.com/maps"
	searchBaseURL = "https://www.google.com/maps/search/"
)

var (
	latLngRe = regexp.MustCompile(`^\s*(-?\d{1,3}(?:\.\d+)?)\s*,\s*(-?\d{1,3}(?:\.\d+)?)\s*$`)
	atRe     = regexp.MustCompile(`@(-?\d{1,3}(?:\.\d+)?),(-?\d{1,3}(?:\.\d+)?)`)
)

// Link - все, что карта умеет сделать из строки локации
type Link struct {
	Location string     `json:"location"`
	EmbedURL string     `json:"embed_url"`
	OpenURL  string     `json:"open_url"`
	Point    *orb.Point `json:"point,omitempty"`
}

// Resolve собирает Link для локации
func Resolve(location string) Link {
	loc := strings.TrimSpace(location)
	link := Link{
		Location: loc,
		EmbedURL: EmbedURL(loc),
		OpenURL:  OpenURL(loc),
	}
	if p, ok := ParsePoint(loc); ok {
		link.Point = &p
	}
	return link
}

// EmbedURL возвращает адрес для iframe карты или "", если локация пустая
func EmbedURL(location string) string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return ""
	}
	return embedBaseURL + "?q=" + escape(loc) + "&output=embed"
}

// OpenURL возвращает ссылку для открытия в полном Google Maps.
// Строки, начинающиеся с http, считаются готовой ссылкой.
func OpenURL(location string) string {
	loc := strings.TrimSpace(location)
	if strings.HasPrefix(loc, "http") {
		return loc
	}
	return searchBaseURL + "?api=1&query=" + escape(loc)
}

// ParsePoint извлекает координаты из "lat,lng" или из ссылки Google Maps
// (@lat,lng в пути либо q=/query= с "lat,lng").
func ParsePoint(location string) (orb.Point, bool) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return orb.Point{}, false
	}

	if m := latLngRe.FindStringSubmatch(loc); m != nil {
		return toPoint(m[1], m[2])
	}

	if !strings.HasPrefix(loc, "http") {
		return orb.Point{}, false
	}

	if m := atRe.FindStringSubmatch(loc); m != nil {
		return toPoint(m[1], m[2])
	}

	u, err := url.Parse(loc)
	if err != nil {
		return orb.Point{}, false
	}
	for _, key := range []string{"q", "query", "ll"} {
		if m := latLngRe.FindStringSubmatch(u.Query().Get(key)); m != nil {
			return toPoint(m[1], m[2])
		}
	}
	return orb.Point{}, false
}

// FeatureCollection строит GeoJSON с маркерами тех спотов, у которых
// локация содержит координаты. Остальные пропускаются.
func FeatureCollection(spots []*models.Spot) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range spots {
		p, ok := ParsePoint(s.Location)
		if !ok {
			continue
		}
		f := geojson.NewFeature(p)
		f.ID = s.ID
		f.Properties["name"] = s.Name
		f.Properties["status"] = s.Status
		f.Properties["status_label"] = models.StatusLabel(s.Status)
		f.Properties["tier"] = s.Tier
		f.Properties["explore_type"] = s.ExploreType
		f.Properties["rating"] = s.Rating
		f.Properties["open_url"] = OpenURL(s.Location)
		fc.Append(f)
	}
	return fc
}

func toPoint(latStr, lngStr string) (orb.Point, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return orb.Point{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return orb.Point{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, false
	}
	return orb.Point{lng, lat}, true
}

// escape кодирует строку так же, как encodeURIComponent: пробел - %20, а не +
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
