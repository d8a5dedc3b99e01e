package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/smart-travel-planner/internal/form"
)

// WindowResponse is the date part of the form after an edit.
type WindowResponse struct {
	StartDate *openapi_types.Date `json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `json:"end_date,omitempty"`
	Days      int                 `json:"days"`
	Valid     bool                `json:"valid"`
	Message   string              `json:"message,omitempty"`
	Notice    string              `json:"notice,omitempty"`
}

// FormResponse is a whole form as the page shows it.
type FormResponse struct {
	Destination string `json:"destination"`
	Preferences string `json:"preferences"`
	WindowResponse
}

// GetForm handles GET /api/form: a fresh form starting today.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	f := form.New(s.clock)
	writeJSON(w, http.StatusOK, FormResponse{
		Destination:    f.Destination,
		Preferences:    f.Preferences,
		WindowResponse: windowBody(f),
	})
}

// GetWindow handles GET /api/window. It replays a single date edit through
// the form so the caller sees the adjusted dates and day count.
func (s *Server) GetWindow(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := bindRequiredDate(q, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	end, err := bindRequiredDate(q, "end_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	var edited *string
	if err := runtime.BindQueryParameter("form", true, false, "edited", q, &edited); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	var field form.Field
	if edited != nil {
		field = form.Field(*edited)
		if field == "" {
			writeError(w, http.StatusBadRequest, codeBadRequest, "edited must be start or end")
			return
		}
	}
	f := &form.State{}
	if err := f.ApplyEdit(field, start, end); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "edited must be start or end")
		return
	}

	writeJSON(w, http.StatusOK, windowBody(f))
}

// bindRequiredDate binds a required YYYY-MM-DD query parameter. The runtime
// binder treats dates as objects and leaves an absent one at the zero time
// without complaint, so presence is checked here first.
func bindRequiredDate(q url.Values, name string) (time.Time, error) {
	if len(q[name]) == 0 {
		return time.Time{}, fmt.Errorf("query parameter '%s' is required", name)
	}
	var d openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, name, q, &d); err != nil {
		return time.Time{}, err
	}
	if d.Time.IsZero() {
		return time.Time{}, fmt.Errorf("query parameter '%s' must be a date (YYYY-MM-DD)", name)
	}
	return d.Time, nil
}

func windowBody(f *form.State) WindowResponse {
	return WindowResponse{
		StartDate: toDate(f.Start),
		EndDate:   toDate(f.End),
		Days:      f.Days,
		Valid:     f.Window.Valid,
		Message:   f.Window.Message,
		Notice:    f.Notice,
	}
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
