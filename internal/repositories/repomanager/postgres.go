package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmaksimovs/chatrunner/internal/dbx"
	"github.com/dmaksimovs/chatrunner/internal/repositories/adminthreads"
	"github.com/dmaksimovs/chatrunner/internal/repositories/configs"
	"github.com/dmaksimovs/chatrunner/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Configs returns a configs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Configs(db dbx.DBTX) configs.Repository {
	return configs.NewPostgresRepository(db)
}

// AdminThreads returns an adminthreads.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) AdminThreads(db dbx.DBTX) adminthreads.Repository {
	return adminthreads.NewPostgresRepository(db)
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT now(),
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_configs (
		user_id BIGINT PRIMARY KEY REFERENCES users (id),
		chat_id TEXT,
		name_prefix TEXT,
		delay INTEGER DEFAULT 10,
		cookies TEXT,
		messages TEXT,
		automation_running BOOLEAN DEFAULT FALSE,
		updated_at TIMESTAMPTZ DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_threads (
		user_id BIGINT PRIMARY KEY REFERENCES users (id),
		thread_id TEXT,
		cookies TEXT,
		chat_type TEXT,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,
}

// InitSchema creates the three tables if absent.
func (m *PostgresRepositoryManager) InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
