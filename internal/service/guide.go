package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

// GuideService answers culture, seasonal and phrasebook questions from a
// guide.Lookup and renders plan results into trip views.
type GuideService struct {
	lookup guide.Lookup
}

// NewGuideService constructs a GuideService over the given lookup source.
func NewGuideService(lookup guide.Lookup) *GuideService {
	return &GuideService{lookup: lookup}
}

// Culture returns the culture tab content for destination.
func (s *GuideService) Culture(ctx context.Context, destination string) (domain.Culture, error) {
	entry, err := s.lookup.Lookup(ctx, destination)
	if err != nil {
		return domain.Culture{}, fmt.Errorf("service.GuideService.Culture: %w", err)
	}
	return guide.Culture(entry), nil
}

// Phrasebook returns the resolved entry so callers can export its phrases.
func (s *GuideService) Phrasebook(ctx context.Context, destination string) (domain.GuideEntry, error) {
	entry, err := s.lookup.Lookup(ctx, destination)
	if err != nil {
		return domain.GuideEntry{}, fmt.Errorf("service.GuideService.Phrasebook: %w", err)
	}
	return entry, nil
}

// Seasonal describes a trip of days days starting on start.
// Returns domain.ErrValidation when days is outside [1,30].
func (s *GuideService) Seasonal(start time.Time, days int) (domain.SeasonalInfo, error) {
	if days < domain.MinTripDays || days > domain.MaxTripDays {
		return domain.SeasonalInfo{}, fmt.Errorf("%w: days must be between %d and %d",
			domain.ErrValidation, domain.MinTripDays, domain.MaxTripDays)
	}
	return guide.Seasonal(start, days), nil
}

// View renders a plan result: grouped weather, seasonal info when the
// result carries a parseable start date, and culture content.
func (s *GuideService) View(ctx context.Context, result domain.PlanResult) (domain.TripView, error) {
	culture, err := s.Culture(ctx, result.Destination)
	if err != nil {
		return domain.TripView{}, err
	}

	view := domain.TripView{
		Destination: result.Destination,
		Days:        result.Days,
		StartDate:   result.StartDate,
		Preferences: result.Preferences,
		Weather:     GroupWeather(result.Weather),
		Culture:     culture,
		Itinerary:   result.Itinerary,
	}
	if start, err := tripwindow.ParseDate(result.StartDate); err == nil {
		info := guide.Seasonal(start, result.Days)
		view.Seasonal = &info
	}
	return view, nil
}
