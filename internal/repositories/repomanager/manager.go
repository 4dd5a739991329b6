package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmaksimovs/chatrunner/internal/dbx"
	"github.com/dmaksimovs/chatrunner/internal/repositories/adminthreads"
	"github.com/dmaksimovs/chatrunner/internal/repositories/configs"
	"github.com/dmaksimovs/chatrunner/internal/repositories/users"
)

// RepositoryManager vends repository implementations for one backend and
// exposes the schema-initialization hook. InitSchema only issues CREATE
// TABLE IF NOT EXISTS statements, so it is idempotent and safe to call on
// every process start.
type RepositoryManager interface {
	InitSchema(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Configs(db dbx.DBTX) configs.Repository
	AdminThreads(db dbx.DBTX) adminthreads.Repository
}
