// Package form holds the trip planning form as an explicit value.
// It applies the date-edit policy, keeps the derived day count in sync with
// the calculator, and turns a filled form into a validated submission.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/tripwindow"
)

// DefaultPreferences is the preferences text a fresh form starts with.
const DefaultPreferences = "sightseeing, food, culture"

// Messages reported while editing or submitting the form.
const (
	MsgEndAdjusted        = "End date cannot be before start date. Adjusting..."
	MsgDestinationMissing = "Please enter a destination!"
	MsgDatesMissing       = "Please select both start and end dates!"
	MsgDaysOutOfRange     = "Please select a trip duration between 1 and 30 days."
)

// ValidationError is a non-fatal input problem shown next to the form.
// It wraps domain.ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrValidation, e.Message)
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// State is the trip form. A nil date means the field is empty.
// Days and Window are derived; call SetStart/SetEnd rather than assigning
// the date fields so they stay current.
type State struct {
	Destination string
	Preferences string
	Start       *time.Time
	End         *time.Time

	Days   int
	Window domain.ValidationResult
	// Notice is the last message produced by an edit, e.g. an end date
	// that was moved back to the start date. Empty when nothing happened.
	Notice string
}

// New returns a form initialised the way the planner page opens: start
// today, end two days later, three days in total.
func New(c clock.Clock) *State {
	w := tripwindow.DefaultWindow(clock.Today(c))
	s := &State{Preferences: DefaultPreferences}
	s.Start = &w.StartDate
	s.End = &w.EndDate
	s.recalculate()
	return s
}

// SetStart changes the start date. An end date that would now precede the
// start is moved to the start date without a notice.
func (s *State) SetStart(d time.Time) {
	s.Notice = ""
	s.Start = &d
	if s.End != nil && s.End.Before(d) {
		end := d
		s.End = &end
	}
	s.recalculate()
}

// SetEnd changes the end date. An end date before the start date is
// replaced by the start date, producing a valid one-day window, and a
// notice is recorded.
func (s *State) SetEnd(d time.Time) {
	s.Notice = ""
	if s.Start != nil && d.Before(*s.Start) {
		s.Notice = MsgEndAdjusted
		d = *s.Start
	}
	s.End = &d
	s.recalculate()
}

// SetDates sets both dates as given, without the edit policy, so an end
// date before the start shows up as an invalid window.
func (s *State) SetDates(start, end time.Time) {
	s.Notice = ""
	s.Start = &start
	s.End = &end
	s.recalculate()
}

// Field names one of the two date inputs.
type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
)

// ApplyEdit sets both dates as though the user had just changed field, so
// the edit policy applies to that field only. An empty field takes both
// dates as given.
func (s *State) ApplyEdit(field Field, start, end time.Time) error {
	switch field {
	case "":
		s.SetDates(start, end)
	case FieldStart:
		s.Start = nil
		s.SetEnd(end)
		s.SetStart(start)
	case FieldEnd:
		s.End = nil
		s.SetStart(start)
		s.SetEnd(end)
	default:
		return &ValidationError{Message: fmt.Sprintf("unknown date field %q (want start or end)", field)}
	}
	return nil
}

// recalculate refreshes Days and Window when both dates are present.
func (s *State) recalculate() {
	if s.Start == nil || s.End == nil {
		return
	}
	s.Window = tripwindow.Compute(*s.Start, *s.End)
	s.Days = s.Window.DayCount
}

// Message returns the text the form should display: the window's own
// validation message first, then any edit notice.
func (s *State) Message() string {
	if s.Start != nil && s.End != nil && !s.Window.Valid {
		return s.Window.Message
	}
	return s.Notice
}

// Submission validates the form and builds the request for the planning
// endpoint. It returns a *ValidationError when any field is unusable, in
// which case nothing must be sent.
func (s *State) Submission() (domain.PlanRequest, error) {
	destination := strings.TrimSpace(s.Destination)
	if destination == "" {
		return domain.PlanRequest{}, &ValidationError{Message: MsgDestinationMissing}
	}
	if s.Start == nil || s.End == nil {
		return domain.PlanRequest{}, &ValidationError{Message: MsgDatesMissing}
	}
	if !s.Window.Valid {
		return domain.PlanRequest{}, &ValidationError{Message: s.Window.Message}
	}
	if s.Days < domain.MinTripDays || s.Days > domain.MaxTripDays {
		return domain.PlanRequest{}, &ValidationError{Message: MsgDaysOutOfRange}
	}

	return domain.PlanRequest{
		ID:          uuid.New(),
		Destination: destination,
		Preferences: s.Preferences,
		Days:        s.Days,
		StartDate:   *s.Start,
	}, nil
}
