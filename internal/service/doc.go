// Package service implements the registry operations on top of the stores.
//
// Every write runs inside store.RunInTransaction so it issues exactly one
// commit or one rollback. Reads go straight to the store without a
// transaction. Services return store and domain sentinel errors unchanged
// where callers are expected to branch on them, and wrap everything else in
// a ServiceError.
package service
