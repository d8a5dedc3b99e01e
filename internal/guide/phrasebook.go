package guide

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// PhrasebookHeaders is the first row of a CSV phrasebook.
var PhrasebookHeaders = []string{"english", "local", "pronunciation"}

// WritePhrasebookCSV writes phrases to w as CSV with a header row.
func WritePhrasebookCSV(w io.Writer, phrases []domain.Phrase) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PhrasebookHeaders); err != nil {
		return fmt.Errorf("guide.WritePhrasebookCSV: %w", err)
	}
	for _, p := range phrases {
		if err := cw.Write([]string{p.English, p.Local, p.Pronunciation}); err != nil {
			return fmt.Errorf("guide.WritePhrasebookCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("guide.WritePhrasebookCSV: %w", err)
	}
	return nil
}
