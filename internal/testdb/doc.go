// Package testdb provides database fixtures for tests.
//
// Open returns an in-memory SQLite database with the registry schema applied,
// so store, service and handler tests exercise real SQL without an external
// server. Each call yields an isolated database. WithTx runs a test body in a
// transaction that is always rolled back. OpenPostgres connects to a scratch
// PostgreSQL database instead and skips the test when none is configured.
//
// Basic usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    cat := testdb.CreateCategory(t, db, "Scale")
//	    ...
//	}
package testdb
