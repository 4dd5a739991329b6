package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmaksimovs/chatrunner/internal/common"
	"github.com/dmaksimovs/chatrunner/internal/dbx"
	"github.com/dmaksimovs/chatrunner/internal/logging"
	"github.com/dmaksimovs/chatrunner/internal/models"
	"github.com/dmaksimovs/chatrunner/internal/repositories/configs"
	"github.com/dmaksimovs/chatrunner/internal/repositories/repomanager"
)

// Messages returned by CreateAccount.
const (
	MsgAccountCreated = "Account created successfully!"
	MsgUsernameTaken  = "Username already exists!"
)

// Store is the collaborator-facing surface of the storage layer. Except for
// account creation, store faults are converted into neutral absent/false
// results; the underlying cause is logged, never raised.
type Store struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	log   logging.Logger
}

// NewStore binds a Store to an open connection and its repository manager.
// The caller owns the connection.
func NewStore(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *Store {
	return &Store{db: db, repos: m, log: log}
}

// InitSchema creates the tables if absent. Idempotent; call once during
// application startup before any other operation.
func (s *Store) InitSchema(ctx context.Context) error {
	return s.repos.InitSchema(ctx, s.db)
}

// hashPassword computes the digest stored and matched for credentials.
// TODO: move to a salted slow hash once existing rows can be rehashed on login.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateAccount creates the user row and its default config row in one
// transaction, so a failed config insert never leaves an orphaned user.
func (s *Store) CreateAccount(ctx context.Context, username, password string) (bool, string) {
	passwordHash := hashPassword(password)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		id, err := s.repos.Users(tx).Create(ctx, username, passwordHash)
		if err != nil {
			return err
		}
		return s.repos.Configs(tx).Create(ctx, configs.DefaultForUser(id))
	})
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return false, MsgUsernameTaken
		}
		s.log.Error(ctx, "account creation failed", "username", username, "error", err.Error())
		return false, fmt.Sprintf("Error: %v", err)
	}

	return true, MsgAccountCreated
}

// VerifyCredentials returns the account identifier on a match. A wrong
// password, an unknown username and a store fault all yield (0, false),
// indistinguishably, so the result leaks nothing about which usernames exist.
func (s *Store) VerifyCredentials(ctx context.Context, username, password string) (int64, bool) {
	id, err := s.repos.Users(s.db).GetIDByCredentials(ctx, username, hashPassword(password))
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "credential check failed", "error", err.Error())
		}
		return 0, false
	}
	return id, true
}

// GetConfig returns the five mutable configuration fields for a user, or
// (nil, false) when no config row exists or on a store fault.
func (s *Store) GetConfig(ctx context.Context, userID int64) (*models.UserConfig, bool) {
	cfg, err := s.repos.Configs(s.db).Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "config read failed", "user_id", userID, "error", err.Error())
		}
		return nil, false
	}
	return cfg, true
}

// UpdateConfig replaces all five mutable fields and refreshes the
// updated-at timestamp.
func (s *Store) UpdateConfig(ctx context.Context, userID int64, chatID, namePrefix string, delay int, cookies, messages string) bool {
	cfg := &models.UserConfig{
		UserID:     userID,
		ChatID:     chatID,
		NamePrefix: namePrefix,
		Delay:      delay,
		Cookies:    cookies,
		Messages:   messages,
	}
	if err := s.repos.Configs(s.db).Update(ctx, cfg); err != nil {
		s.log.Error(ctx, "config update failed", "user_id", userID, "error", err.Error())
		return false
	}
	return true
}

// SetRunning persists the automation-running flag.
func (s *Store) SetRunning(ctx context.Context, userID int64, running bool) bool {
	if err := s.repos.Configs(s.db).SetRunning(ctx, userID, running); err != nil {
		s.log.Error(ctx, "automation flag update failed", "user_id", userID, "error", err.Error())
		return false
	}
	return true
}

// GetRunning returns the automation-running flag. A missing config row and a
// store fault both read as false.
func (s *Store) GetRunning(ctx context.Context, userID int64) bool {
	running, err := s.repos.Configs(s.db).GetRunning(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "automation flag read failed", "user_id", userID, "error", err.Error())
		}
		return false
	}
	return running
}

// GetUsername returns the username for an identifier, or ("", false) when the
// identifier is unknown or on a store fault.
func (s *Store) GetUsername(ctx context.Context, userID int64) (string, bool) {
	username, err := s.repos.Users(s.db).GetUsernameByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "username lookup failed", "user_id", userID, "error", err.Error())
		}
		return "", false
	}
	return username, true
}

// SetAdminThread records the admin thread for a user, replacing any previous
// record and refreshing its timestamp.
func (s *Store) SetAdminThread(ctx context.Context, userID int64, threadID, cookies, chatType string) bool {
	th := &models.AdminThread{
		UserID:   userID,
		ThreadID: threadID,
		Cookies:  cookies,
		ChatType: chatType,
	}
	if err := s.repos.AdminThreads(s.db).Upsert(ctx, th); err != nil {
		s.log.Error(ctx, "admin thread upsert failed", "user_id", userID, "error", err.Error())
		return false
	}
	return true
}

// GetAdminThread returns the thread identifier recorded for a user, or
// ("", false) when none exists or on a store fault.
func (s *Store) GetAdminThread(ctx context.Context, userID int64) (string, bool) {
	threadID, err := s.repos.AdminThreads(s.db).GetThreadID(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "admin thread read failed", "user_id", userID, "error", err.Error())
		}
		return "", false
	}
	return threadID, true
}
