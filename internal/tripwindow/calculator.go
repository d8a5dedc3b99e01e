// Package tripwindow validates trip date ranges and derives the day count.
// Everything here is a pure function of its inputs; there is no UI or I/O.
package tripwindow

import (
	"math"
	"time"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// Messages reported by Compute for invalid windows.
const (
	MsgEndBeforeStart = "End date must be after start date."
	MsgTooLong        = "Maximum trip duration is 30 days."
)

const day = 24 * time.Hour

// Compute validates the window [start, end] and derives its inclusive day count.
//
//   - end before start: invalid, DayCount 1.
//   - more than MaxTripDays days: invalid, DayCount clamped to MaxTripDays.
//   - otherwise valid with DayCount = ceil((end-start)/24h) + 1.
func Compute(start, end time.Time) domain.ValidationResult {
	if end.Before(start) {
		return domain.ValidationResult{
			Valid:    false,
			DayCount: domain.MinTripDays,
			Message:  MsgEndBeforeStart,
		}
	}

	days := DayCount(start, end)
	if days > domain.MaxTripDays {
		return domain.ValidationResult{
			Valid:    false,
			DayCount: domain.MaxTripDays,
			Message:  MsgTooLong,
		}
	}
	return domain.ValidationResult{Valid: true, DayCount: days}
}

// DayCount returns ceil((end-start)/24h) + 1 without clamping.
// Partial days round up, so a window ending later on the next calendar
// day counts both days.
func DayCount(start, end time.Time) int {
	diff := end.Sub(start)
	return int(math.Ceil(float64(diff)/float64(day))) + 1
}
