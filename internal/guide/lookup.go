// Package guide resolves destination text to culture, language and
// seasonal content.
//
// Destinations are matched by substring against a fixed, ordered set of
// country keys; anything unmatched gets the default entry. The data behind
// a Lookup is swappable: the built-in Table, a YAML file (LoadFile) or the
// Postgres-backed repo.GuideRepo.
package guide

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// Lookup returns the guide entry for free-form destination text.
// Implementations must fall back to the default entry rather than fail
// when no key matches, and must fill empty Etiquette/Food sections from it.
type Lookup interface {
	Lookup(ctx context.Context, destination string) (domain.GuideEntry, error)
}

// Table is an in-process Lookup over an ordered list of entries.
// The first entry whose key is contained in the lowercased destination wins.
type Table struct {
	entries []domain.GuideEntry
	def     domain.GuideEntry
}

// NewTable builds a Table from entries in match order plus the fallback.
// It returns an error if the fallback has no phrases, since every lookup
// may end up serving it.
func NewTable(entries []domain.GuideEntry, def domain.GuideEntry) (*Table, error) {
	if len(def.Phrases) == 0 {
		return nil, fmt.Errorf("guide.NewTable: default entry has no phrases")
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("guide.NewTable: entry %d has an empty key", i)
		}
		entries[i].Key = strings.ToLower(strings.TrimSpace(e.Key))
	}
	def.Key = domain.DefaultGuideKey
	return &Table{entries: entries, def: def}, nil
}

// Builtin returns a Table over the bundled destination data.
func Builtin() *Table {
	t, err := NewTable(builtinEntries(), builtinDefault())
	if err != nil {
		panic("guide: invalid builtin data: " + err.Error())
	}
	return t
}

// Lookup implements Lookup. It never fails.
func (t *Table) Lookup(_ context.Context, destination string) (domain.GuideEntry, error) {
	dest := strings.ToLower(destination)
	for _, e := range t.entries {
		if strings.Contains(dest, e.Key) {
			return WithDefaults(e, t.def), nil
		}
	}
	return t.def, nil
}

// Entries returns the keyed entries followed by the default entry.
func (t *Table) Entries() []domain.GuideEntry {
	out := make([]domain.GuideEntry, 0, len(t.entries)+1)
	out = append(out, t.entries...)
	return append(out, t.def)
}

// WithDefaults fills the empty sections of e from def.
func WithDefaults(e, def domain.GuideEntry) domain.GuideEntry {
	if e.Language == "" {
		e.Language = def.Language
	}
	if len(e.Phrases) == 0 {
		e.Phrases = def.Phrases
	}
	if len(e.Etiquette) == 0 {
		e.Etiquette = def.Etiquette
	}
	if len(e.Food) == 0 {
		e.Food = def.Food
	}
	return e
}
