package adminthreads

import (
	"context"

	"github.com/dmaksimovs/chatrunner/internal/models"
)

// Repository describes persistence operations for the per-user admin thread
// record. At most one row exists per user.
type Repository interface {
	// Upsert inserts the row or, when one exists for the user, replaces
	// thread id, cookies and chat type and refreshes created_at. The
	// operation is a single atomic statement keyed on the user id.
	Upsert(ctx context.Context, th *models.AdminThread) error

	// GetThreadID returns the thread identifier for a user,
	// or common.ErrorNotFound.
	GetThreadID(ctx context.Context, userID int64) (string, error)
}
