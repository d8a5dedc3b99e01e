package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// GetGuide handles GET /api/guide: the culture tabs for a destination.
func (s *Server) GetGuide(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var destination string
	if err := runtime.BindQueryParameter("form", true, true, "destination", q, &destination); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	culture, err := s.guides.Culture(r.Context(), destination)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, culture)
}

// GetSeason handles GET /api/season.
func (s *Server) GetSeason(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := bindRequiredDate(q, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	var days int
	if err := runtime.BindQueryParameter("form", true, true, "days", q, &days); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	info, err := s.guides.Seasonal(start, days)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
