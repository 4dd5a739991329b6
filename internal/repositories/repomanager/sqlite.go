// Package repomanager wires repository constructors to a concrete backend
// (embedded SQLite or PostgreSQL) and owns schema initialization.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmaksimovs/chatrunner/internal/dbx"
	"github.com/dmaksimovs/chatrunner/internal/repositories/adminthreads"
	"github.com/dmaksimovs/chatrunner/internal/repositories/configs"
	"github.com/dmaksimovs/chatrunner/internal/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Configs returns a configs.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Configs(db dbx.DBTX) configs.Repository {
	return configs.NewSQLiteRepository(db)
}

// AdminThreads returns an adminthreads.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) AdminThreads(db dbx.DBTX) adminthreads.Repository {
	return adminthreads.NewSQLiteRepository(db)
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		is_active BOOLEAN DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS user_configs (
		user_id INTEGER PRIMARY KEY,
		chat_id TEXT,
		name_prefix TEXT,
		delay INTEGER DEFAULT 10,
		cookies TEXT,
		messages TEXT,
		automation_running BOOLEAN DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS admin_threads (
		user_id INTEGER PRIMARY KEY,
		thread_id TEXT,
		cookies TEXT,
		chat_type TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// InitSchema creates the three tables if absent.
func (m *SQLiteRepositoryManager) InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
