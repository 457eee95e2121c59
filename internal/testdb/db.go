package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Config returns the database configuration used by Open.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:                 database.DriverSQLite,
		URL:                    ":memory:",
		MaxOpenConns:           1,
		MaxIdleConns:           1,
		ConnMaxLifetimeMinutes: 0,
	}
}

// Open returns a fresh in-memory database with the schema applied.
// The database is closed when the test finishes.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, Config())
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	err = database.ApplySchema(ctx, db, database.DriverSQLite, DiscardLogger())
	require.NoError(t, err, "Failed to apply schema")

	return db
}

// PostgresURLEnv names the variable holding the connection URL of a scratch
// PostgreSQL database for OpenPostgres.
const PostgresURLEnv = "WORKOUT_TEST_DATABASE_URL"

// OpenPostgres connects to the PostgreSQL database named by PostgresURLEnv and
// applies the schema. The test is skipped when the variable is unset.
// Callers should work inside WithTx so nothing is left behind.
func OpenPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping PostgreSQL test", PostgresURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver:       database.DriverPostgres,
		URL:          url,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
	require.NoError(t, err, "Failed to open PostgreSQL test database")
	t.Cleanup(func() { _ = db.Close() })

	err = database.ApplySchema(ctx, db, database.DriverPostgres, DiscardLogger())
	require.NoError(t, err, "Failed to apply schema")

	return db
}

// WithTx executes fn within a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.Beginx()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already ended the transaction
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
