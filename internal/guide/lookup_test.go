package guide_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
)

// compile-time check: Table must satisfy guide.Lookup.
var _ guide.Lookup = (*guide.Table)(nil)

func lookup(t *testing.T, destination string) domain.GuideEntry {
	t.Helper()
	e, err := guide.Builtin().Lookup(context.Background(), destination)
	require.NoError(t, err)
	return e
}

func TestLookup_SubstringCaseInsensitive(t *testing.T) {
	tests := []struct {
		destination string
		language    string
	}{
		{"Paris, France", "French"},
		{"BARCELONA SPAIN", "Spanish"},
		{"rome italy", "Italian"},
		{"Kyoto, Japan", "Japanese"},
		{"Berlin Germany", "German"},
		{"Beijing, China", "Mandarin Chinese"},
		{"Delhi, India", "Hindi"},
	}
	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			assert.Equal(t, tt.language, lookup(t, tt.destination).Language)
		})
	}
}

func TestLookup_NoMatch_ReturnsDefault(t *testing.T) {
	e := lookup(t, "Lima, Peru")

	assert.Equal(t, domain.DefaultGuideKey, e.Key)
	assert.Equal(t, "Local Language", e.Language)
	assert.Len(t, e.Phrases, 8)
}

func TestLookup_CityWithoutCountry_ReturnsDefault(t *testing.T) {
	assert.Equal(t, domain.DefaultGuideKey, lookup(t, "Paris").Key)
}

func TestLookup_FirstKeyInOrderWins(t *testing.T) {
	// "france" precedes "spain" in match order regardless of text position.
	assert.Equal(t, "French", lookup(t, "Spain to France road trip").Language)
}

func TestLookup_MissingSectionsFallBackToDefault(t *testing.T) {
	def := lookup(t, "nowhere")

	china := lookup(t, "Shanghai, China")
	assert.Equal(t, "谢谢", china.Phrases[1].Local)
	assert.Equal(t, def.Etiquette, china.Etiquette)
	assert.Equal(t, def.Food, china.Food)

	germany := lookup(t, "Munich, Germany")
	assert.NotEqual(t, def.Etiquette, germany.Etiquette)
	assert.Equal(t, def.Food, germany.Food)
}

func TestNewTable_RejectsDefaultWithoutPhrases(t *testing.T) {
	_, err := guide.NewTable(nil, domain.GuideEntry{Language: "x"})
	assert.Error(t, err)
}

func TestNewTable_RejectsEmptyKey(t *testing.T) {
	def := domain.GuideEntry{Phrases: []domain.Phrase{{English: "Hello"}}}
	_, err := guide.NewTable([]domain.GuideEntry{{Key: " "}}, def)
	assert.Error(t, err)
}

func TestNewTable_NormalisesKeys(t *testing.T) {
	def := domain.GuideEntry{Language: "Local", Phrases: []domain.Phrase{{English: "Hello"}}}
	tbl, err := guide.NewTable([]domain.GuideEntry{{Key: " Peru ", Language: "Spanish"}}, def)
	require.NoError(t, err)

	e, err := tbl.Lookup(context.Background(), "Cusco, PERU")

	require.NoError(t, err)
	assert.Equal(t, "Spanish", e.Language)
	assert.Equal(t, def.Phrases, e.Phrases)
}

func TestEntries_EndsWithDefault(t *testing.T) {
	entries := guide.Builtin().Entries()

	require.Len(t, entries, 8)
	assert.Equal(t, "france", entries[0].Key)
	assert.Equal(t, domain.DefaultGuideKey, entries[len(entries)-1].Key)
}
