package tripwindow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_SameDay(t *testing.T) {
	d := date(2025, 6, 1)

	got := tripwindow.Compute(d, d)

	assert.Equal(t, domain.ValidationResult{Valid: true, DayCount: 1}, got)
}

func TestCompute_ThirtyDays_Valid(t *testing.T) {
	start := date(2025, 6, 1)

	got := tripwindow.Compute(start, start.AddDate(0, 0, 29))

	assert.True(t, got.Valid)
	assert.Equal(t, 30, got.DayCount)
	assert.Empty(t, got.Message)
}

func TestCompute_ThirtyOneDays_Clamped(t *testing.T) {
	start := date(2025, 6, 1)

	got := tripwindow.Compute(start, start.AddDate(0, 0, 30))

	assert.False(t, got.Valid)
	assert.Equal(t, domain.MaxTripDays, got.DayCount)
	assert.Equal(t, tripwindow.MsgTooLong, got.Message)
}

func TestCompute_EndBeforeStart(t *testing.T) {
	start := date(2025, 6, 1)

	got := tripwindow.Compute(start, start.AddDate(0, 0, -1))

	assert.False(t, got.Valid)
	assert.Equal(t, 1, got.DayCount)
	assert.Equal(t, tripwindow.MsgEndBeforeStart, got.Message)
}

// TestCompute_InclusiveCount checks dayCount = (end-start in days) + 1 for
// every window length the calculator accepts.
func TestCompute_InclusiveCount(t *testing.T) {
	start := date(2025, 1, 1)
	for n := 0; n < domain.MaxTripDays; n++ {
		got := tripwindow.Compute(start, start.AddDate(0, 0, n))
		require.True(t, got.Valid, "offset %d", n)
		require.Equal(t, n+1, got.DayCount, "offset %d", n)
	}
}

func TestCompute_AcrossMonthAndLeapDay(t *testing.T) {
	got := tripwindow.Compute(date(2024, 2, 27), date(2024, 3, 2))

	assert.True(t, got.Valid)
	assert.Equal(t, 5, got.DayCount)
}

func TestCompute_PartialDayRoundsUp(t *testing.T) {
	start := date(2025, 6, 1)
	end := start.Add(36 * time.Hour)

	got := tripwindow.Compute(start, end)

	assert.True(t, got.Valid)
	assert.Equal(t, 3, got.DayCount)
}

func TestCompute_WayTooLong(t *testing.T) {
	start := date(2025, 1, 1)

	got := tripwindow.Compute(start, date(2026, 1, 1))

	assert.False(t, got.Valid)
	assert.Equal(t, 30, got.DayCount)
}
