package models

import "time"

// UserConfig holds the per-user automation settings. Exactly one row exists
// per user; it is created together with the user with default values.
//
// Messages is a newline-delimited list of message templates. Delay is the
// pause between sent messages, in whole seconds.
type UserConfig struct {
	UserID            int64
	ChatID            string
	NamePrefix        string
	Delay             int
	Cookies           string
	Messages          string
	AutomationRunning bool
	UpdatedAt         time.Time
}
