// Package domain contains the core data types for the travel planner.
// This package has minimal external dependencies and is imported by every
// other internal package (tripwindow, form, guide, repo, service, handler).
package domain

import "time"

// MinTripDays and MaxTripDays bound the length of a planned trip, inclusive.
const (
	MinTripDays = 1
	MaxTripDays = 30
)

// TripWindow is the selected start/end date pair for a planned trip.
// It is recreated on every date change and never persisted.
type TripWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ValidationResult is the outcome of checking a TripWindow.
// DayCount is always within [MinTripDays, MaxTripDays], even when Valid is false.
// Message is empty when the window is valid.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	DayCount int    `json:"days"`
	Message  string `json:"message,omitempty"`
}
