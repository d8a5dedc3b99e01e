// Package repo contains all database access logic for the travel planner.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/smart-travel-planner/internal/domain"
	"github.com/pkordes/smart-travel-planner/internal/guide"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GuideRepo stores guide entries in Postgres and serves them through the
// guide.Lookup interface. Entries match in ascending position order; the
// row keyed domain.DefaultGuideKey is the fallback.
type GuideRepo struct {
	db db
}

// compile-time check: GuideRepo is a drop-in guide source.
var _ guide.Lookup = (*GuideRepo)(nil)

// NewGuideRepo constructs a GuideRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGuideRepo(db db) *GuideRepo {
	return &GuideRepo{db: db}
}

const guideColumns = `id, key, position, language, phrases, etiquette, food`

// Lookup returns the first entry, by position, whose key occurs in the
// lowercased destination, with empty sections filled from the default row.
// Returns domain.ErrNotFound only when the default row itself is missing.
func (r *GuideRepo) Lookup(ctx context.Context, destination string) (domain.GuideEntry, error) {
	const q = `
		SELECT ` + guideColumns + `
		FROM guide_entries
		WHERE key = @default_key
		   OR strpos(@destination, key) > 0
		ORDER BY (key = @default_key), position
		LIMIT 2`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"default_key": domain.DefaultGuideKey,
		"destination": strings.ToLower(destination),
	})
	if err != nil {
		return domain.GuideEntry{}, fmt.Errorf("repo.GuideRepo.Lookup: %w", err)
	}
	defer rows.Close()

	var (
		match, def     domain.GuideEntry
		found, haveDef bool
	)
	for rows.Next() {
		row, err := scanGuide(rows)
		if err != nil {
			return domain.GuideEntry{}, fmt.Errorf("repo.GuideRepo.Lookup: scan: %w", err)
		}
		if row.entry.Key == domain.DefaultGuideKey {
			def, haveDef = row.entry, true
		} else if !found {
			match, found = row.entry, true
		}
	}
	if err := rows.Err(); err != nil {
		return domain.GuideEntry{}, fmt.Errorf("repo.GuideRepo.Lookup: rows: %w", err)
	}

	if !haveDef {
		// The LIMIT can push the default row out when two keys match.
		d, err := r.getByKey(ctx, domain.DefaultGuideKey)
		if err != nil {
			return domain.GuideEntry{}, fmt.Errorf("repo.GuideRepo.Lookup: default entry: %w", err)
		}
		def = d
	}
	if !found {
		return def, nil
	}
	return guide.WithDefaults(match, def), nil
}

// getByKey retrieves one entry by key.
func (r *GuideRepo) getByKey(ctx context.Context, key string) (domain.GuideEntry, error) {
	const q = `SELECT ` + guideColumns + ` FROM guide_entries WHERE key = @key`

	row, err := scanGuide(r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}))
	if err != nil {
		return domain.GuideEntry{}, err
	}
	return row.entry, nil
}

// Upsert inserts or replaces the entry with e.Key at the given match position.
func (r *GuideRepo) Upsert(ctx context.Context, position int, e domain.GuideEntry) error {
	const q = `
		INSERT INTO guide_entries (key, position, language, phrases, etiquette, food)
		VALUES (@key, @position, @language, @phrases, @etiquette, @food)
		ON CONFLICT (key) DO UPDATE
		SET position   = EXCLUDED.position,
		    language   = EXCLUDED.language,
		    phrases    = EXCLUDED.phrases,
		    etiquette  = EXCLUDED.etiquette,
		    food       = EXCLUDED.food,
		    updated_at = now()`

	key := strings.ToLower(strings.TrimSpace(e.Key))
	if key == "" {
		return fmt.Errorf("repo.GuideRepo.Upsert: %w: key is required", domain.ErrValidation)
	}

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"key":       key,
		"position":  position,
		"language":  e.Language,
		"phrases":   nonNil(e.Phrases),
		"etiquette": nonNil(e.Etiquette),
		"food":      nonNil(e.Food),
	})
	if err != nil {
		return fmt.Errorf("repo.GuideRepo.Upsert: %w", err)
	}
	return nil
}

// Count returns the number of stored entries, default included.
func (r *GuideRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM guide_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.GuideRepo.Count: %w", err)
	}
	return n, nil
}

// SeedIfEmpty writes entries (match order, default last as returned by
// guide.Table.Entries) when the table has no rows. It reports whether it seeded.
func (r *GuideRepo) SeedIfEmpty(ctx context.Context, entries []domain.GuideEntry) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("repo.GuideRepo.SeedIfEmpty: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	for i, e := range entries {
		if err := r.Upsert(ctx, i, e); err != nil {
			return false, fmt.Errorf("repo.GuideRepo.SeedIfEmpty: %w", err)
		}
	}
	return true, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type guideRow struct {
	id       uuid.UUID
	position int
	entry    domain.GuideEntry
}

// scanGuide maps a single database row; JSONB columns decode straight into
// the domain slices.
func scanGuide(s scanner) (guideRow, error) {
	var (
		g  guideRow
		id pgtype.UUID
	)
	err := s.Scan(&id, &g.entry.Key, &g.position, &g.entry.Language,
		&g.entry.Phrases, &g.entry.Etiquette, &g.entry.Food)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guideRow{}, domain.ErrNotFound
		}
		return guideRow{}, err
	}
	g.id = uuid.UUID(id.Bytes)
	return g, nil
}

// nonNil keeps empty sections as JSON [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
