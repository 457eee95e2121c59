package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/config"
	"modernc.org/sqlite" // registers the "sqlite" driver
)

// Supported values of config.DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SQLiteLowerFunc is a Unicode-aware replacement for SQLite's LOWER, which
// only folds ASCII letters. It is registered on every sqlite connection.
const SQLiteLowerFunc = "unicode_lower"

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// sqliteParams are applied by the modernc driver on every new connection.
// Immediate transactions take the write lock at BEGIN, so concurrent writers
// queue on busy_timeout instead of failing a lock upgrade.
var sqliteParams = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
	"_txlock=immediate",
}

func init() {
	sqlx.BindDriver("pgx", sqlx.DOLLAR)
	sqlx.BindDriver("sqlite", sqlx.QUESTION)

	if err := sqlite.RegisterDeterministicScalarFunction(SQLiteLowerFunc, 1, unicodeLower); err != nil {
		// ALLOW-PANIC: registration only fails on a duplicate name at init time
		panic(fmt.Sprintf("database: register %s: %v", SQLiteLowerFunc, err))
	}
}

// unicodeLower lowercases TEXT and BLOB arguments with strings.ToLower.
// NULL stays NULL and other values pass through unchanged, like LOWER.
func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// DriverName returns the database/sql driver name for a configured driver.
func DriverName(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "pgx", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open establishes a connection pool for cfg, applies the pool settings and
// verifies connectivity with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driverName, err := DriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.URL
	if cfg.Driver == DriverSQLite {
		dsn = SQLiteDSN(cfg.URL)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	// Every connection to an in-memory SQLite database is a separate database.
	if cfg.Driver == DriverSQLite && isSQLiteMemory(cfg.URL) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// SQLiteDSN appends the connection parameters the stores rely on to a SQLite
// data source name.
func SQLiteDSN(url string) string {
	if url == ":memory:" {
		url = "file::memory:"
	}

	var missing []string
	for _, param := range sqliteParams {
		if !strings.Contains(url, param) {
			missing = append(missing, param)
		}
	}
	if len(missing) == 0 {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(missing, "&")
}

func isSQLiteMemory(url string) bool {
	return strings.Contains(url, ":memory:") || strings.Contains(url, "mode=memory")
}
