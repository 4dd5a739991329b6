package models

import "time"

// AdminThread tracks the messaging thread a user administers. At most one
// row exists per user; CreatedAt is refreshed whenever the row is replaced.
type AdminThread struct {
	UserID    int64
	ThreadID  string
	Cookies   string
	ChatType  string
	CreatedAt time.Time
}
