package model

import (
	"time"
	_ "time/tzdata"
)

// DefaultTimezone and DefaultReminderTime mirror what the bot offers before the
// user changes anything.
const (
	DefaultTimezone     = "Europe/Moscow"
	DefaultReminderTime = "09:00"
)

// Preferences hold a user's notification settings.
type Preferences struct {
	Timezone         string `json:"timezone"`                    // IANA zone used for display only
	QuietHoursStart  string `json:"quiet_hours_start,omitempty"` // "HH:MM" local, empty to disable
	QuietHoursEnd    string `json:"quiet_hours_end,omitempty"`   // "HH:MM" local
	ReminderTime     string `json:"reminder_time,omitempty"`     // preferred "HH:MM" local
	RemindersEnabled bool   `json:"reminders_enabled"`
	Channel          string `json:"channel"` // "telegram" or "email"
	Address          string `json:"address"` // chat id or email address
}

// User is an end user of the bot.
type User struct {
	ID            int64       `json:"id"` // identifier assigned by the chat platform
	Username      string      `json:"username,omitempty"`
	Preferences   Preferences `json:"preferences"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	DeactivatedAt *time.Time  `json:"deactivated_at,omitempty"`
}

// Active reports whether the user still receives reminders at all.
func (u User) Active() bool {
	return u.DeactivatedAt == nil
}

// Location resolves the user's time zone, falling back to UTC.
func (p Preferences) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// DefaultPreferences returns the settings a freshly created user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Timezone:         DefaultTimezone,
		ReminderTime:     DefaultReminderTime,
		RemindersEnabled: true,
		Channel:          "telegram",
	}
}
