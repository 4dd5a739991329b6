package models

import "time"

// User is a single account row. IsActive is reserved for soft deactivation;
// it defaults to true and is only consulted by credential checks.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	IsActive     bool
}
