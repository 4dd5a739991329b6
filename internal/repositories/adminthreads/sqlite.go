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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert relies on the user_id primary key: a second write for the same user
// updates in place, so no check-then-act race exists.
func (r *SQLiteRepository) Upsert(ctx context.Context, th *models.AdminThread) error {
	query := `INSERT INTO admin_threads (user_id, thread_id, cookies, chat_type)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET thread_id = excluded.thread_id,
				cookies = excluded.cookies,
				chat_type = excluded.chat_type,
				created_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, query, th.UserID, th.ThreadID, th.Cookies, th.ChatType)
	if err != nil {
		return fmt.Errorf("failed to upsert admin thread: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetThreadID(ctx context.Context, userID int64) (string, error) {
	query := `SELECT thread_id FROM admin_threads WHERE user_id = ?`

	var threadID string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&threadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("failed to get admin thread: %w", err)
	}
	return threadID, nil
}
