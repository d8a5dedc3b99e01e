package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
	"github.com/pkordes/smart-travel-planner/internal/repo"
	"github.com/pkordes/smart-travel-planner/testutil"
)

// newTestRepo returns a GuideRepo over an empty, rolled-back transaction.
func newTestRepo(t *testing.T) *repo.GuideRepo {
	t.Helper()
	return repo.NewGuideRepo(testutil.EmptyGuideTx(t))
}

// seededRepo returns a repo holding the bundled guide data.
func seededRepo(t *testing.T) *repo.GuideRepo {
	t.Helper()
	r := newTestRepo(t)
	seeded, err := r.SeedIfEmpty(context.Background(), guide.Builtin().Entries())
	require.NoError(t, err)
	require.True(t, seeded)
	return r
}

func TestGuideRepo_SeedIfEmpty_OnlyOnce(t *testing.T) {
	r := seededRepo(t)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	seeded, err := r.SeedIfEmpty(ctx, guide.Builtin().Entries())
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestGuideRepo_Lookup_MatchesBuiltinTable(t *testing.T) {
	r := seededRepo(t)
	ctx := context.Background()
	mem := guide.Builtin()

	for _, dest := range []string{
		"Paris, France", "Kyoto JAPAN", "Shanghai, China", "Munich, Germany",
		"Lima, Peru", "Spain to France road trip",
	} {
		want, err := mem.Lookup(ctx, dest)
		require.NoError(t, err)

		got, err := r.Lookup(ctx, dest)
		require.NoError(t, err, dest)
		assert.Equal(t, want, got, dest)
	}
}

func TestGuideRepo_Lookup_NoDefault_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Lookup(context.Background(), "anywhere")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuideRepo_Upsert_Replaces(t *testing.T) {
	r := seededRepo(t)
	ctx := context.Background()

	err := r.Upsert(ctx, 0, domain.GuideEntry{
		Key:      "France",
		Language: "Français",
		Phrases:  []domain.Phrase{{English: "Hello", Local: "Salut", Pronunciation: "sah-loo"}},
	})
	require.NoError(t, err)

	looked, err := r.Lookup(ctx, "Lyon, France")
	require.NoError(t, err)
	assert.Equal(t, "Français", looked.Language)
	assert.Len(t, looked.Phrases, 1)
	assert.NotEmpty(t, looked.Etiquette, "empty sections fall back to default")
}

func TestGuideRepo_Upsert_EmptyKey(t *testing.T) {
	r := newTestRepo(t)

	err := r.Upsert(context.Background(), 0, domain.GuideEntry{Key: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
