package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/smart-travel-planner/internal/form"
)

// PlanBody is the JSON body of POST /api/plan. Missing dates are left
// empty on the form so the submission reports them.
type PlanBody struct {
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Preferences *string             `json:"preferences,omitempty"`
}

// PostPlan handles POST /api/plan.
// 422 when the form is incomplete or the window invalid (no upstream call is
// made), 502 when the planning service fails.
func (s *Server) PostPlan(w http.ResponseWriter, r *http.Request) {
	var body PlanBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	view, err := s.planner.Submit(r.Context(), planForm(body))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// planForm fills a form from the body. Both dates are taken as sent, so an
// end date before the start is reported rather than adjusted.
func planForm(body PlanBody) *form.State {
	f := &form.State{Destination: body.Destination, Preferences: form.DefaultPreferences}
	if body.Preferences != nil {
		f.Preferences = *body.Preferences
	}
	switch {
	case body.StartDate != nil && body.EndDate != nil:
		f.SetDates(body.StartDate.Time, body.EndDate.Time)
	case body.StartDate != nil:
		f.SetStart(body.StartDate.Time)
	case body.EndDate != nil:
		f.SetEnd(body.EndDate.Time)
	}
	return f
}
