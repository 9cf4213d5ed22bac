package dto

// UserRequest creates or updates a user's notification settings.
type UserRequest struct {
	Username         string `json:"username"`
	Timezone         string `json:"timezone" validate:"omitempty,timezone"`
	QuietHoursStart  string `json:"quiet_hours_start" validate:"omitempty,datetime=15:04"`
	QuietHoursEnd    string `json:"quiet_hours_end" validate:"omitempty,datetime=15:04"`
	ReminderTime     string `json:"reminder_time" validate:"omitempty,datetime=15:04"`
	RemindersEnabled *bool  `json:"reminders_enabled"`
	Channel          string `json:"channel" validate:"omitempty,oneof=telegram email"`
	Address          string `json:"address" validate:"required"`
}
