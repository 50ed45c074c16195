package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/radio-stations/backend/migrations"
	"github.com/pkordes/radio-stations/backend/testutil"
)

// TestMain applies all pending migrations to the test database before any
// test in the package runs, so individual tests never need to think about
// schema state. Without TEST_DATABASE_URL the Postgres tests skip themselves
// and only the in-memory tests run.
func TestMain(m *testing.M) {
	if os.Getenv(testutil.DatabaseURLEnv) == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv(testutil.DatabaseURLEnv))

	if _, err := migrations.Up(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
