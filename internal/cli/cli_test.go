package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes tripctl with args against a clock fixed at 2025-06-01.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts := &options{
		clock:  clock.NewFakeClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)),
		guides: guide.Builtin(),
	}
	cmd := newRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"window", "plan", "guide", "season", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestWindow_valid(t *testing.T) {
	out, err := run(t, "window", "2025-06-01", "2025-06-07")

	require.NoError(t, err)
	assert.Contains(t, out, "Days: 7")
	assert.Contains(t, out, "valid trip window")
}

func TestWindow_tooLong(t *testing.T) {
	out, err := run(t, "window", "2025-06-01", "2025-07-15")

	require.NoError(t, err)
	assert.Contains(t, out, "Days: 30")
	assert.Contains(t, out, "Maximum trip duration is 30 days.")
}

func TestWindow_editedEndJSON(t *testing.T) {
	out, err := run(t, "--json", "window", "2025-06-05", "2025-06-01", "--edited", "end")

	require.NoError(t, err)
	var got windowOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, windowOutput{
		StartDate: "2025-06-05",
		EndDate:   "2025-06-05",
		Days:      1,
		Valid:     true,
		Notice:    "End date cannot be before start date. Adjusting...",
	}, got)
}

func TestWindow_badInput(t *testing.T) {
	_, err := run(t, "window", "2025-06-01", "tomorrow")
	require.Error(t, err)

	_, err = run(t, "window", "2025-06-01", "2025-06-02", "--edited", "both")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSeason_JSON(t *testing.T) {
	out, err := run(t, "--json", "season", "2025-12-20", "--days", "10")

	require.NoError(t, err)
	var got domain.SeasonalInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Winter ❄️", got.Season)
	assert.Equal(t, "December", got.Month)
	assert.Equal(t, 10, got.Days)
}

func TestSeason_daysOutOfRange(t *testing.T) {
	_, err := run(t, "season", "2025-06-01", "--days", "31")

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuide_text(t *testing.T) {
	out, err := run(t, "guide", "Barcelona, Spain")

	require.NoError(t, err)
	assert.Contains(t, out, "Language: Spanish")
	assert.Contains(t, out, "Practical tips")
}

func TestGuide_CSV(t *testing.T) {
	out, err := run(t, "guide", "Lyon, France", "--csv")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "english,local,pronunciation", lines[0])
	assert.Greater(t, len(lines), 1)
}

func TestGuideExport_roundTripsThroughParse(t *testing.T) {
	out, err := run(t, "guide", "export")
	require.NoError(t, err)

	table, err := guide.Parse([]byte(out))
	require.NoError(t, err)
	want := guide.Builtin().Entries()
	got := table.Entries()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Key, got[i].Key)
		assert.Equal(t, want[i].Phrases, got[i].Phrases)
	}

	entry, err := table.Lookup(context.Background(), "Osaka, Japan")
	require.NoError(t, err)
	assert.Equal(t, "japan", entry.Key)
}

type lookupFunc func(ctx context.Context, destination string) (domain.GuideEntry, error)

func (f lookupFunc) Lookup(ctx context.Context, destination string) (domain.GuideEntry, error) {
	return f(ctx, destination)
}

func TestGuideExport_unsupportedSource(t *testing.T) {
	opts := &options{
		clock: clock.RealClock{},
		guides: lookupFunc(func(context.Context, string) (domain.GuideEntry, error) {
			return domain.GuideEntry{}, nil
		}),
	}
	cmd := newRootCmd(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"guide", "export"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be exported")
}

type capturedRequest struct {
	URL    *url.URL
	Header http.Header
}

// planningStub answers /api/plan_trip with a fixed plan and records the request.
func planningStub(t *testing.T, got *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.URL = r.URL
		got.Header = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.PlanResult{
			Destination: r.URL.Query().Get("destination"),
			Days:        3,
			StartDate:   r.URL.Query().Get("start_date"),
			Preferences: r.URL.Query().Get("preferences"),
			Weather: []domain.WeatherPoint{
				{DateTime: "2025-06-01 12:00:00", Temp: 21.5, Condition: "clear sky"},
				{DateTime: "2025-06-01 15:00:00", Temp: 24, Condition: "few clouds"},
				{DateTime: "2025-06-02 12:00:00", Temp: 19.4, Condition: "light rain"},
			},
			Itinerary: "Day 1: Colosseum",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPlan_JSON(t *testing.T) {
	var got capturedRequest
	srv := planningStub(t, &got)

	out, err := run(t, "--json", "--server", srv.URL, "plan", "Rome, Italy")

	require.NoError(t, err)
	q := got.URL.Query()
	assert.Equal(t, "/api/plan_trip", got.URL.Path)
	assert.Equal(t, "Rome, Italy", q.Get("destination"))
	assert.Equal(t, "3", q.Get("days"))
	assert.Equal(t, "2025-06-01", q.Get("start_date"))
	assert.Equal(t, "sightseeing, food, culture", q.Get("preferences"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))

	var view domain.TripView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "Italian", view.Culture.Language)
	require.Len(t, view.Weather, 2)
	assert.Equal(t, 22, view.Weather[0].TempC)
	require.NotNil(t, view.Seasonal)
	assert.Equal(t, "Summer ☀️", view.Seasonal.Season)
	assert.Equal(t, "Day 1: Colosseum", view.Itinerary)
}

func TestPlan_text(t *testing.T) {
	var got capturedRequest
	srv := planningStub(t, &got)

	out, err := run(t, "--server", srv.URL, "plan", "Rome, Italy", "--start", "2025-06-10", "--end", "2025-06-08")

	require.NoError(t, err)
	assert.Equal(t, "1", got.URL.Query().Get("days"))
	assert.Contains(t, out, "End date cannot be before start date. Adjusting...")
	assert.Contains(t, out, "Weather")
	assert.Contains(t, out, "Day 1: Colosseum")
}

func TestPlan_emptyDestinationNeverCallsServer(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, "--server", srv.URL, "plan", "   ")

	require.EqualError(t, err, "Please enter a destination!")
	assert.Zero(t, calls)
}

func TestPlan_upstreamDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Days must be between 1 and 30"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, "--server", srv.URL, "plan", "Rome")

	require.EqualError(t, err, "Days must be between 1 and 30")
}

func TestPlan_requiresServer(t *testing.T) {
	t.Setenv("PLANNER_URL", "")

	_, err := run(t, "plan", "Rome")

	require.ErrorContains(t, err, "PLANNER_URL")
}
