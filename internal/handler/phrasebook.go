package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
)

// Phrasebook formats accepted by GET /api/phrasebook.
const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// PhrasebookResponse is the JSON form of GET /api/phrasebook.
type PhrasebookResponse struct {
	Key      string          `json:"key"`
	Language string          `json:"language"`
	Phrases  []domain.Phrase `json:"phrases"`
}

// GetPhrasebook handles GET /api/phrasebook.
// Use ?format=csv for a download; default is JSON.
func (s *Server) GetPhrasebook(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var destination string
	if err := runtime.BindQueryParameter("form", true, true, "destination", q, &destination); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", q, &format); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	wantCSV := false
	if format != nil {
		switch *format {
		case formatJSON:
		case formatCSV:
			wantCSV = true
		default:
			writeError(w, http.StatusBadRequest, codeBadRequest, "format must be json or csv")
			return
		}
	}

	entry, err := s.guides.Phrasebook(r.Context(), destination)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if !wantCSV {
		phrases := entry.Phrases
		if phrases == nil {
			phrases = []domain.Phrase{}
		}
		writeJSON(w, http.StatusOK, PhrasebookResponse{Key: entry.Key, Language: entry.Language, Phrases: phrases})
		return
	}

	var buf bytes.Buffer
	if err := guide.WritePhrasebookCSV(&buf, entry.Phrases); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="phrasebook-`+entry.Key+`.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}
