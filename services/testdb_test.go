package services

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/db"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and runs
// migrations against it. Tests using it are skipped when the variable is
// unset so the pure-logic suite stays runnable without Postgres.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	if err := db.RunMigrations(dbURL); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

func cleanupChallenges(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "DELETE FROM challenges WHERE title LIKE 'test-%'")
	if err != nil {
		t.Logf("Warning: failed to cleanup test data: %v", err)
	}
}
