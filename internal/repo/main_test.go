package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/smart-travel-planner/testutil"
)

// TestMain migrates the test database once per test binary. Without
// TEST_DATABASE_URL the integration tests skip themselves.
func TestMain(m *testing.M) {
	if dsn := testutil.DSN(); dsn != "" {
		if err := testutil.Migrate(context.Background(), dsn); err != nil {
			log.Fatalf("repo tests: %v", err)
		}
	}
	os.Exit(m.Run())
}
