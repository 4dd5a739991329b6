package adminthreads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmaksimovs/chatrunner/internal/common"
	"github.com/dmaksimovs/chatrunner/internal/dbx"
	"github.com/dmaksimovs/chatrunner/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, th *models.AdminThread) error {
	query :=
		`INSERT INTO admin_threads (user_id, thread_id, cookies, chat_type)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET thread_id = excluded.thread_id,
		     cookies = excluded.cookies,
		     chat_type = excluded.chat_type,
		     created_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query, th.UserID, th.ThreadID, th.Cookies, th.ChatType)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetThreadID(ctx context.Context, userID int64) (string, error) {
	query :=
		`SELECT thread_id FROM admin_threads
		 WHERE user_id = $1
		 `

	var threadID string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&threadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return threadID, nil
}
