// Package adminthreads provides the persistence layer for the per-user
// admin thread record: the messaging-thread context a user administers,
// kept separately from their automation configuration.
//
// The row is written with a single atomic insert-or-update keyed on the
// user_id primary key; created_at is refreshed on every replace. SQLite and
// PostgreSQL implementations are provided over dbx.DBTX.
package adminthreads
