package guide

import (
	"time"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// Season is a northern-hemisphere meteorological season.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

var seasonNames = [...]string{
	Spring: "Spring 🌸",
	Summer: "Summer ☀️",
	Autumn: "Autumn 🍂",
	Winter: "Winter ❄️",
}

func (s Season) String() string {
	if s < Spring || s > Winter {
		return "Unknown"
	}
	return seasonNames[s]
}

// SeasonOf maps a month to its season: March–May spring, June–August
// summer, September–November autumn, the rest winter.
func SeasonOf(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Autumn
	default:
		return Winter
	}
}

type seasonal struct {
	activities, events, packing, foods string
}

var seasonTable = map[Season]seasonal{
	Spring: {
		activities: "Perfect for outdoor sightseeing, garden visits, and spring festivals",
		events:     "Spring festivals, flower shows, cultural events",
		packing:    "Light layers, rain jacket, comfortable walking shoes",
		foods:      "Fresh produce, spring vegetables, light seasonal dishes",
	},
	Summer: {
		activities: "Great for beach activities, hiking, and outdoor adventures",
		events:     "Summer concerts, outdoor markets, local celebrations",
		packing:    "Light clothing, sunscreen, hat, sunglasses",
		foods:      "Fresh fruits, salads, grilled foods, refreshing drinks",
	},
	Autumn: {
		activities: "Ideal for cultural tours, wine tasting, and fall foliage viewing",
		events:     "Harvest festivals, cultural events, holiday preparations",
		packing:    "Warm layers, waterproof jacket, comfortable boots",
		foods:      "Harvest vegetables, warm soups, seasonal fruits",
	},
	Winter: {
		activities: "Perfect for indoor museums, winter sports, and cozy experiences",
		events:     "Winter markets, holiday celebrations, New Year events",
		packing:    "Heavy coat, warm layers, gloves, scarf, thermal wear",
		foods:      "Comfort foods, warm drinks, holiday specialties",
	},
}

// Seasonal describes travel in the season of start for a trip of days days.
func Seasonal(start time.Time, days int) domain.SeasonalInfo {
	s := SeasonOf(start.Month())
	row := seasonTable[s]
	return domain.SeasonalInfo{
		Season:     s.String(),
		Month:      start.Month().String(),
		Days:       days,
		Activities: row.activities,
		Events:     row.events,
		Packing:    row.packing,
		Foods:      row.foods,
	}
}
