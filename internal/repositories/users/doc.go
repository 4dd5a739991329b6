// Package users provides the persistence layer for account rows.
//
// The package defines a Repository interface with a SQLite implementation
// (SQLiteRepository) for the embedded store and a PostgreSQL implementation
// (PostgresRepository). Both persist data through a dbx.DBTX, so they can run
// against a plain connection or inside a caller-owned transaction.
//
// Username uniqueness is enforced by the store; Create converts the driver's
// unique-constraint violation into common.ErrorUsernameTaken so callers can
// match it with errors.Is. Credential checks match username, password digest
// and the is_active flag in a single query and report common.ErrorNotFound
// for any miss, keeping unknown-user and wrong-password indistinguishable.
package users
