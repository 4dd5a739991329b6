// Package configs provides the persistence layer for per-user automation
// configuration.
//
// One config row exists per user, created in the same transaction as the
// account itself with the package-level defaults (name prefix, delay, sample
// messages). Update replaces the five mutable fields wholesale and refreshes
// updated_at; SetRunning/GetRunning touch only the automation_running column.
//
// Both a SQLite and a PostgreSQL implementation are provided over dbx.DBTX.
package configs
