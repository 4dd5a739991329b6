package repomanager

import (
	"database/sql"
	"fmt"

	"github.com/dmaksimovs/chatrunner/internal/config"
)

// Open opens the backend selected by cfg and returns the connection together
// with the matching RepositoryManager. The caller owns the connection.
func Open(cfg *config.Config) (*sql.DB, RepositoryManager, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		return db, NewSQLiteRepositoryManager(), nil
	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		return db, NewPostgresRepositoryManager(), nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}
