package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/plant-care/internal/model"
)

//go:generate mockgen -source=service.go -destination=../mocks/analytics/mock.go -package=mocks
type userReader interface {
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListPlantsByUser(ctx context.Context, userID int64, includeArchived bool) ([]model.Plant, error)
}

type eventReader interface {
	ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.CareEvent, error)
}

type deliveryReader interface {
	ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.ReminderDelivery, error)
}

// Service loads the history of a user and aggregates it.
type Service struct {
	users      userReader
	events     eventReader
	deliveries deliveryReader
}

func NewService(users userReader, events eventReader, deliveries deliveryReader) *Service {
	return &Service{
		users:      users,
		events:     events,
		deliveries: deliveries,
	}
}

// Adherence rates the deliveries due in [from, to).
func (s *Service) Adherence(ctx context.Context, userID int64, from, to time.Time) (Adherence, error) {
	ds, err := s.deliveries.ListByUser(ctx, userID, from, to)
	if err != nil {
		return Adherence{}, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return ComputeAdherence(ds), nil
}

// Streak counts streaks over the whole history in the user's time zone.
func (s *Service) Streak(ctx context.Context, userID int64, period Period, now time.Time) (Streak, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return Streak{}, err
	}

	ds, err := s.deliveries.ListByUser(ctx, userID, time.Time{}, now)
	if err != nil {
		return Streak{}, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return ComputeStreak(ds, period, u.Preferences.Location(), now), nil
}

// MonthlySummary rolls up one calendar month of the user's local time.
func (s *Service) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (Summary, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	from, to := MonthRange(year, month, u.Preferences.Location())
	return s.summary(ctx, userID, from, to)
}

// YearlySummary rolls up one calendar year of the user's local time.
func (s *Service) YearlySummary(ctx context.Context, userID int64, year int) (Summary, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	from, to := YearRange(year, u.Preferences.Location())
	return s.summary(ctx, userID, from, to)
}

func (s *Service) summary(ctx context.Context, userID int64, from, to time.Time) (Summary, error) {
	events, err := s.events.ListByUser(ctx, userID, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list events: %w", err)
	}

	ds, err := s.deliveries.ListByUser(ctx, userID, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return Summarize(events, ds, from, to), nil
}

// PhotoArchive returns the photos recorded in [from, to).
func (s *Service) PhotoArchive(ctx context.Context, userID int64, from, to time.Time) ([]Photo, error) {
	events, err := s.events.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return PhotoArchive(events), nil
}

// UserStats summarises all plants of the user, archived ones included.
func (s *Service) UserStats(ctx context.Context, userID int64, now time.Time) (UserStats, error) {
	plants, err := s.users.ListPlantsByUser(ctx, userID, true)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to list plants: %w", err)
	}

	events, err := s.events.ListByUser(ctx, userID, time.Time{}, now)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to list events: %w", err)
	}

	return ComputeUserStats(plants, events), nil
}
