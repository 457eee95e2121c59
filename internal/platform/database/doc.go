// Package database opens the SQL connection pool used by the stores and
// bootstraps the registry schema.
//
// Two drivers are supported: PostgreSQL through the pgx stdlib adapter and
// SQLite through the pure-Go modernc.org/sqlite driver. Both are exposed as
// *sqlx.DB so stores can write queries with '?' placeholders and Rebind them
// for the active driver.
package database
