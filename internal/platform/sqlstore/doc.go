// Package sqlstore implements the store interfaces on top of sqlx.
//
// Queries are written with '?' placeholders and rebound for the active
// driver, so the same store code runs against PostgreSQL (pgx) and SQLite
// (modernc.org/sqlite). Driver errors are translated to the sentinel errors
// of the store package by MapError.
package sqlstore
