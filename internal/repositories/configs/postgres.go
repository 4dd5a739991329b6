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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, cfg *models.UserConfig) error {
	query :=
		`INSERT INTO user_configs (user_id, chat_id, name_prefix, delay, cookies, messages)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		cfg.UserID, cfg.ChatID, cfg.NamePrefix, cfg.Delay, cfg.Cookies, cfg.Messages)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID int64) (*models.UserConfig, error) {
	query :=
		`SELECT chat_id, name_prefix, delay, cookies, messages FROM user_configs
		 WHERE user_id = $1
		 `

	cfg := &models.UserConfig{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&cfg.ChatID, &cfg.NamePrefix, &cfg.Delay, &cfg.Cookies, &cfg.Messages)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cfg, nil
}

func (r *PostgresRepository) Update(ctx context.Context, cfg *models.UserConfig) error {
	query :=
		`UPDATE user_configs
		 SET chat_id = $1, name_prefix = $2, delay = $3, cookies = $4, messages = $5,
		     updated_at = now()
		 WHERE user_id = $6
		 `

	_, err := r.db.ExecContext(ctx, query,
		cfg.ChatID, cfg.NamePrefix, cfg.Delay, cfg.Cookies, cfg.Messages, cfg.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetRunning(ctx context.Context, userID int64, running bool) error {
	query :=
		`UPDATE user_configs SET automation_running = $1
		 WHERE user_id = $2
		 `

	_, err := r.db.ExecContext(ctx, query, running, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetRunning(ctx context.Context, userID int64) (bool, error) {
	query :=
		`SELECT automation_running FROM user_configs
		 WHERE user_id = $1
		 `

	var running bool
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&running)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return running, nil
}
