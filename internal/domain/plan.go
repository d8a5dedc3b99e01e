package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanRequest is a validated form submission, ready to send to the
// planning endpoint. ID correlates the outbound call with our own logs.
type PlanRequest struct {
	ID          uuid.UUID
	Destination string
	Preferences string
	Days        int
	StartDate   time.Time
}

// WeatherPoint is one forecast sample returned by the planning endpoint.
// DateTime is formatted "2006-01-02 15:04:05".
type WeatherPoint struct {
	DateTime  string  `json:"datetime"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// PlanResult is the document returned by the planning endpoint on success.
// StartDate is kept as the raw "2006-01-02" string the endpoint echoes back;
// it may be empty.
type PlanResult struct {
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	StartDate   string         `json:"start_date"`
	Preferences string         `json:"preferences"`
	Weather     []WeatherPoint `json:"weather"`
	Itinerary   string         `json:"itinerary"`
}
