package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/form"
	"github.com/pkordes/smart-travel-planner/internal/handler"
)

// mockPlanner is a test double for handler.Planner.
type mockPlanner struct {
	submit func(ctx context.Context, f *form.State) (domain.TripView, error)
}

// errUnexpectedCall is returned by a mock method the test did not set up.
// Handlers turn it into a 500, so the test fails on its status assertion.
var errUnexpectedCall = errors.New("unexpected call to unset mock method")

func (m *mockPlanner) Submit(ctx context.Context, f *form.State) (domain.TripView, error) {
	if m.submit == nil {
		return domain.TripView{}, errUnexpectedCall
	}
	return m.submit(ctx, f)
}

// mockGuides is a test double for handler.Guides. Set only the fields a test needs.
type mockGuides struct {
	culture    func(ctx context.Context, destination string) (domain.Culture, error)
	phrasebook func(ctx context.Context, destination string) (domain.GuideEntry, error)
	seasonal   func(start time.Time, days int) (domain.SeasonalInfo, error)
}

func (m *mockGuides) Culture(ctx context.Context, destination string) (domain.Culture, error) {
	if m.culture == nil {
		return domain.Culture{}, errUnexpectedCall
	}
	return m.culture(ctx, destination)
}
func (m *mockGuides) Phrasebook(ctx context.Context, destination string) (domain.GuideEntry, error) {
	if m.phrasebook == nil {
		return domain.GuideEntry{}, errUnexpectedCall
	}
	return m.phrasebook(ctx, destination)
}
func (m *mockGuides) Seasonal(start time.Time, days int) (domain.SeasonalInfo, error) {
	if m.seasonal == nil {
		return domain.SeasonalInfo{}, errUnexpectedCall
	}
	return m.seasonal(start, days)
}

var (
	_ handler.Planner = (*mockPlanner)(nil)
	_ handler.Guides  = (*mockGuides)(nil)
)

// fixedNow is 2025-06-01 09:30 UTC.
var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestServer(p handler.Planner, g handler.Guides) *handler.Server {
	return handler.NewServer(p, g, clock.NewFakeClock(fixedNow), nil)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
