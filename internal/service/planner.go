// Package service contains the business logic for the travel planner.
// Services validate inputs, call the planning endpoint and lookup sources
// through interfaces, and assemble the views the handlers return.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/form"
)

// PlanClient is the outbound dependency that produces itineraries.
// *planclient.Client satisfies it.
type PlanClient interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error)
}

// PlannerService submits trip forms to the planning endpoint and renders
// the result. It keeps no state between submissions.
type PlannerService struct {
	client PlanClient
	guides *GuideService
	log    *slog.Logger
}

// NewPlannerService constructs a PlannerService. A nil logger uses slog.Default().
func NewPlannerService(client PlanClient, guides *GuideService, log *slog.Logger) *PlannerService {
	if log == nil {
		log = slog.Default()
	}
	return &PlannerService{client: client, guides: guides, log: log}
}

// Submit validates the form and, only if it is valid, plans the trip.
// Returns a *form.ValidationError (wrapping domain.ErrValidation) without
// contacting the endpoint when the form is incomplete or out of range.
func (s *PlannerService) Submit(ctx context.Context, f *form.State) (domain.TripView, error) {
	req, err := f.Submission()
	if err != nil {
		return domain.TripView{}, err
	}
	return s.Plan(ctx, req)
}

// Plan sends an already validated request and builds the trip view.
// Transport failures are returned wrapped; callers match domain.ErrTransport.
func (s *PlannerService) Plan(ctx context.Context, req domain.PlanRequest) (domain.TripView, error) {
	log := s.log.With(
		"request_id", req.ID.String(),
		"destination", req.Destination,
		"days", req.Days,
	)
	log.InfoContext(ctx, "planning trip")

	result, err := s.client.Plan(ctx, req)
	if err != nil {
		log.WarnContext(ctx, "plan request failed", "error", err)
		return domain.TripView{}, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}

	// The endpoint echoes the request; fill anything it left out.
	if result.Destination == "" {
		result.Destination = req.Destination
	}
	if result.Days == 0 {
		result.Days = req.Days
	}
	if result.Preferences == "" {
		result.Preferences = req.Preferences
	}

	view, err := s.guides.View(ctx, result)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}
	view.RequestID = req.ID.String()

	log.InfoContext(ctx, "trip planned", "weather_days", len(view.Weather))
	return view, nil
}
