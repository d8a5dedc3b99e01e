package tripwindow

import (
	"fmt"
	"time"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// DateLayout is the wire format for calendar dates ("2006-01-02").
const DateLayout = "2006-01-02"

// defaultSpanDays is how many days after the start date the default end date sits.
const defaultSpanDays = 2

// ParseDate parses a "YYYY-MM-DD" string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD (e.g. 2025-01-31)", s)
	}
	return t, nil
}

// FormatDate formats t as "YYYY-MM-DD". The zero time formats as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Truncate drops the time of day, keeping the calendar date of t in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultWindow returns the window a fresh form starts with: today through
// two days later, three days in total.
func DefaultWindow(today time.Time) domain.TripWindow {
	start := Truncate(today)
	return domain.TripWindow{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, defaultSpanDays),
	}
}
