// Package common defines shared sentinel errors used across the storage
// layers of chatrunner. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorUsernameTaken = errors.New("username already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
