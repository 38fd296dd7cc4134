package models

import "fmt"

func TierLabel(tier string) string {
	switch tier {
	case TierNoPower:
		return "No power"
	case TierGraffitiNoPower:
		return "Graffiti (no power)"
	case TierGraffitiPower:
		return "Graffiti (power)"
	case TierNoGraffiti:
		return "No graffiti"
	default:
		return tier
	}
}

func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pending visit"
	case StatusCompleted:
		return "Completed visit"
	case StatusToGo:
		return "To go"
	case StatusBeen:
		return "Been"
	default:
		return status
	}
}

func ExploreLabel(exploreType string) string {
	switch exploreType {
	case ExploreUrbex:
		return "Urbex (abandoned)"
	case ExploreRoofing:
		return "Roofing"
	case ExploreDrain:
		return "Drain / Tunnel"
	case ExploreMixed:
		return "Mixed / both"
	case ExploreOther:
		return "Other / not listed"
	default:
		return exploreType
	}
}

func SecurityLabel(security string) string {
	if security == Yes {
		return "Security / cameras"
	}
	return "No obvious security"
}

func SquattersLabel(squatters string) string {
	if squatters == Yes {
		return "Squatters likely"
	}
	return "Squatters unlikely"
}

// RatingLine возвращает строку рейтинга карточки или "", если показывать нечего
func RatingLine(s *Spot) string {
	if !s.IsCompleted() || s.Rating <= 0 {
		return ""
	}
	again := "Wouldn’t go again"
	if s.Again == Yes {
		again = "Would go again"
	}
	return fmt.Sprintf("Rating: %d/5 · %s", s.Rating, again)
}
