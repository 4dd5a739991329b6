package configs

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

func (r *SQLiteRepository) Create(ctx context.Context, cfg *models.UserConfig) error {
	query := `INSERT INTO user_configs (user_id, chat_id, name_prefix, delay, cookies, messages)
			VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		cfg.UserID, cfg.ChatID, cfg.NamePrefix, cfg.Delay, cfg.Cookies, cfg.Messages)
	if err != nil {
		return fmt.Errorf("failed to insert user config: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID int64) (*models.UserConfig, error) {
	query := `SELECT chat_id, name_prefix, delay, cookies, messages
			FROM user_configs WHERE user_id = ?`

	cfg := &models.UserConfig{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&cfg.ChatID, &cfg.NamePrefix, &cfg.Delay, &cfg.Cookies, &cfg.Messages)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get user config: %w", err)
	}
	return cfg, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, cfg *models.UserConfig) error {
	query := `UPDATE user_configs
			SET chat_id = ?, name_prefix = ?, delay = ?, cookies = ?, messages = ?,
				updated_at = CURRENT_TIMESTAMP
			WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		cfg.ChatID, cfg.NamePrefix, cfg.Delay, cfg.Cookies, cfg.Messages, cfg.UserID)
	if err != nil {
		return fmt.Errorf("failed to update user config: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SetRunning(ctx context.Context, userID int64, running bool) error {
	query := `UPDATE user_configs SET automation_running = ? WHERE user_id = ?`

	// stored as integer 0/1
	v := 0
	if running {
		v = 1
	}
	_, err := r.db.ExecContext(ctx, query, v, userID)
	if err != nil {
		return fmt.Errorf("failed to set automation flag: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetRunning(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT automation_running FROM user_configs WHERE user_id = ?`

	var running bool
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&running)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("failed to get automation flag: %w", err)
	}
	return running, nil
}
