package domain

// WeatherDay is the first forecast sample of a calendar day, ready for display.
type WeatherDay struct {
	Date      string `json:"date"`  // "2006-01-02"
	Label     string `json:"label"` // e.g. "Mon, Jun 2"
	TempC     int    `json:"temp_c"`
	Condition string `json:"condition"`
}

// TripView is everything the results panel shows for one planned trip.
// Seasonal is nil when the plan carried no start date.
type TripView struct {
	RequestID   string        `json:"request_id"`
	Destination string        `json:"destination"`
	Days        int           `json:"days"`
	StartDate   string        `json:"start_date,omitempty"`
	Preferences string        `json:"preferences"`
	Weather     []WeatherDay  `json:"weather"`
	Seasonal    *SeasonalInfo `json:"seasonal,omitempty"`
	Culture     Culture       `json:"culture"`
	Itinerary   string        `json:"itinerary"`
}
