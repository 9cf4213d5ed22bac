package care

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/plant-care/internal/model"
)

// UpsertUser stores a user and their preferences. Empty settings fall back to
// the defaults.
func (s *Service) UpsertUser(ctx context.Context, u model.User) (model.User, error) {
	def := model.DefaultPreferences()
	if u.Preferences.Timezone == "" {
		u.Preferences.Timezone = def.Timezone
	}
	if u.Preferences.Channel == "" {
		u.Preferences.Channel = def.Channel
	}

	if err := validatePreferences(u.Preferences); err != nil {
		return model.User{}, err
	}

	return s.plants.UpsertUser(ctx, u)
}

// DeactivateUser stops all reminders of a user. Plants and history are kept.
func (s *Service) DeactivateUser(ctx context.Context, id int64) error {
	return s.plants.DeactivateUser(ctx, id, s.now())
}

// GetUser returns a stored user.
func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.plants.GetUser(ctx, id)
}

func validatePreferences(p model.Preferences) error {
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q", ErrInvalidPreferences, p.Timezone)
	}

	for _, clock := range []string{p.QuietHoursStart, p.QuietHoursEnd, p.ReminderTime} {
		if clock == "" {
			continue
		}
		if _, err := time.Parse("15:04", clock); err != nil {
			return fmt.Errorf("%w: time of day %q", ErrInvalidPreferences, clock)
		}
	}

	if (p.QuietHoursStart == "") != (p.QuietHoursEnd == "") {
		return fmt.Errorf("%w: quiet hours need both start and end", ErrInvalidPreferences)
	}

	switch p.Channel {
	case "telegram", "email":
	default:
		return fmt.Errorf("%w: channel %q", ErrInvalidPreferences, p.Channel)
	}

	return nil
}
