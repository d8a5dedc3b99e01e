// Package handler implements the HTTP API of the travel planner.
// All handlers are methods on Server; they are split into files by area
// (health.go, form.go, plan.go, guide.go, phrasebook.go) and share the
// Server's dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/form"
)

// Planner submits a filled form and returns the rendered trip.
// *service.PlannerService satisfies it.
type Planner interface {
	Submit(ctx context.Context, f *form.State) (domain.TripView, error)
}

// Guides answers the destination guide endpoints.
// *service.GuideService satisfies it.
type Guides interface {
	Culture(ctx context.Context, destination string) (domain.Culture, error)
	Phrasebook(ctx context.Context, destination string) (domain.GuideEntry, error)
	Seasonal(start time.Time, days int) (domain.SeasonalInfo, error)
}

// Server holds the dependencies of every handler.
type Server struct {
	planner Planner
	guides  Guides
	clock   clock.Clock
	log     *slog.Logger
}

// NewServer constructs the Server. A nil clock uses the wall clock and a
// nil logger uses slog.Default().
func NewServer(planner Planner, guides Guides, clk clock.Clock, log *slog.Logger) *Server {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, guides: guides, clock: clk, log: log}
}

// Routes returns a chi router with every endpoint mounted. Cross-cutting
// middleware (request id, logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/form", s.GetForm)
		r.Get("/window", s.GetWindow)
		r.Post("/plan", s.PostPlan)
		r.Get("/guide", s.GetGuide)
		r.Get("/season", s.GetSeason)
		r.Get("/phrasebook", s.GetPhrasebook)
	})
	return r
}
