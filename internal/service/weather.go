package service

import (
	"math"
	"strings"
	"time"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// MaxWeatherDays is how many calendar days of forecast a view shows.
const MaxWeatherDays = 5

const weatherLayout = "2006-01-02 15:04:05"

// GroupWeather keeps the first sample of each calendar day, in arrival
// order, for at most MaxWeatherDays days. Temperatures round half up.
// Always returns a non-nil slice.
func GroupWeather(points []domain.WeatherPoint) []domain.WeatherDay {
	days := make([]domain.WeatherDay, 0, MaxWeatherDays)
	seen := make(map[string]bool, MaxWeatherDays)

	for _, p := range points {
		date, _, _ := strings.Cut(strings.TrimSpace(p.DateTime), " ")
		if date == "" || seen[date] {
			continue
		}
		seen[date] = true
		days = append(days, domain.WeatherDay{
			Date:      date,
			Label:     weatherLabel(p.DateTime, date),
			TempC:     int(math.Floor(p.Temp + 0.5)),
			Condition: p.Condition,
		})
		if len(days) == MaxWeatherDays {
			break
		}
	}
	return days
}

// weatherLabel formats a sample time as "Mon, Jun 2", falling back to the
// raw date when the timestamp does not parse.
func weatherLabel(datetime, date string) string {
	t, err := time.Parse(weatherLayout, strings.TrimSpace(datetime))
	if err != nil {
		if t, err = time.Parse("2006-01-02", date); err != nil {
			return date
		}
	}
	return t.Format("Mon, Jan 2")
}
