// Package testutil holds helpers for the Postgres integration tests of the
// guide store. Every helper that needs a database skips the calling test
// when TEST_DATABASE_URL is unset.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/smart-travel-planner/migrations"
)

// EnvDSN names the environment variable holding the test database URL.
const EnvDSN = "TEST_DATABASE_URL"

// DSN returns the test database URL, or "" when integration tests are off.
func DSN() string { return os.Getenv(EnvDSN) }

// NewPool opens a pool to the test database, closed at test cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "open pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(context.Background()), "ping test database")
	return pool
}

// NewSQLDB returns a database/sql handle over a fresh test pool, for
// code such as goose that only speaks database/sql.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// EmptyGuideTx begins a transaction in which guide_entries is empty. The
// transaction is rolled back at cleanup, so tests never see each other's rows.
func EmptyGuideTx(t *testing.T) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	tx, err := NewPool(t).Begin(ctx)
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() { _ = tx.Rollback(ctx) })

	_, err = tx.Exec(ctx, `DELETE FROM guide_entries`)
	require.NoError(t, err, "clear guide_entries")
	return tx
}

// Migrate brings the database at dsn up to the latest schema. It is meant
// for TestMain, where no *testing.T exists.
func Migrate(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("testutil.Migrate: open pool: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if _, err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("testutil.Migrate: %w", err)
	}
	return nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := DSN()
	if dsn == "" {
		t.Skip(EnvDSN + " not set; skipping integration test")
	}
	return dsn
}
