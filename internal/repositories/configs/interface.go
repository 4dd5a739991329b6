package configs

import (
	"context"

	"github.com/dmaksimovs/chatrunner/internal/models"
)

// Defaults written into the config row created together with a new account.
const (
	DefaultNamePrefix = "[END TO END]"
	DefaultDelay      = 10
	DefaultMessages   = "Hello!\nHow are you?\nNice to meet you!"
)

// DefaultForUser builds the default configuration for a freshly created account.
func DefaultForUser(userID int64) *models.UserConfig {
	return &models.UserConfig{
		UserID:     userID,
		ChatID:     "",
		NamePrefix: DefaultNamePrefix,
		Delay:      DefaultDelay,
		Cookies:    "",
		Messages:   DefaultMessages,
	}
}

// Repository describes persistence operations for per-user automation
// configuration. Exactly one row exists per user.
type Repository interface {
	// Create inserts the config row for a user. Called once, in the same
	// transaction as the account insert.
	Create(ctx context.Context, cfg *models.UserConfig) error

	// Get returns the five mutable configuration fields for a user,
	// or common.ErrorNotFound.
	Get(ctx context.Context, userID int64) (*models.UserConfig, error)

	// Update replaces the five mutable fields and refreshes updated_at.
	// A full replace, not a patch.
	Update(ctx context.Context, cfg *models.UserConfig) error

	// SetRunning persists the automation-running flag.
	SetRunning(ctx context.Context, userID int64, running bool) error

	// GetRunning returns the automation-running flag,
	// or common.ErrorNotFound when the user has no config row.
	GetRunning(ctx context.Context, userID int64) (bool, error)
}
