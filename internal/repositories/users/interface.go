package users

import "context"

// Repository describes persistence operations for account rows.
// Implementations are backed by SQLite (embedded) or PostgreSQL.
type Repository interface {
	// Create inserts a new account and returns its generated identifier.
	// Returns common.ErrorUsernameTaken when the username is already used.
	Create(ctx context.Context, username, passwordHash string) (int64, error)

	// GetIDByCredentials returns the identifier of the active account
	// matching username and password digest, or common.ErrorNotFound.
	// Unknown username and wrong digest are indistinguishable on purpose.
	GetIDByCredentials(ctx context.Context, username, passwordHash string) (int64, error)

	// GetUsernameByID returns the username for an identifier,
	// or common.ErrorNotFound.
	GetUsernameByID(ctx context.Context, id int64) (string, error)
}
