package care

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

// Registration is a new plant as produced by the classifier or typed in by the user.
type Registration struct {
	UserID           int64
	Species          string
	Nickname         string
	AcquiredAt       time.Time // defaults to now
	WateringInterval *int
	FeedingInterval  *int
	PhotoRef         string
	HealthState      model.HealthState // optional finding, adjusts the intervals
}

// CareProfile is the editable part of a plant.
type CareProfile struct {
	Species          string
	Nickname         string
	WateringInterval *int
	FeedingInterval  *int
	PhotoRef         string
	HealthState      model.HealthState
}

// RegisterPlant stores a new plant. Intervals are validated as given and then
// adjusted for the reported health state. The owner is created with default
// preferences on first use.
func (s *Service) RegisterPlant(ctx context.Context, r Registration) (model.Plant, error) {
	p := model.Plant{
		UserID:           r.UserID,
		Species:          r.Species,
		Nickname:         r.Nickname,
		AcquiredAt:       r.AcquiredAt.UTC(),
		WateringInterval: r.WateringInterval,
		FeedingInterval:  r.FeedingInterval,
		PhotoRef:         r.PhotoRef,
		HealthState:      r.HealthState,
	}
	if r.AcquiredAt.IsZero() {
		p.AcquiredAt = s.now()
	}

	if err := schedule.Validate(p); err != nil {
		return model.Plant{}, err
	}

	adjusted := schedule.AdjustForState(schedule.Intervals{Watering: p.WateringInterval, Feeding: p.FeedingInterval}, p.HealthState)
	p.WateringInterval, p.FeedingInterval = adjusted.Watering, adjusted.Feeding

	if err := s.ensureUser(ctx, r.UserID); err != nil {
		return model.Plant{}, err
	}

	id, err := s.plants.CreatePlant(ctx, p)
	if err != nil {
		return model.Plant{}, fmt.Errorf("register plant: %w", err)
	}
	p.ID = id

	zlog.Logger.Info().Str("plant_id", id.String()).Int64("user_id", p.UserID).Msg("plant registered")

	return p, nil
}

func (s *Service) ensureUser(ctx context.Context, id int64) error {
	_, err := s.plants.GetUser(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, plant.ErrUserNotFound) {
		return fmt.Errorf("get user: %w", err)
	}

	_, err = s.plants.UpsertUser(ctx, model.User{ID: id, Preferences: model.DefaultPreferences()})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// UpdateCareProfile replaces the care parameters of an active plant. The new
// intervals take effect at the next poll; existing deliveries are untouched.
func (s *Service) UpdateCareProfile(ctx context.Context, plantID uuid.UUID, cp CareProfile) (model.Plant, error) {
	p, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return model.Plant{}, err
	}
	if p.Archived() {
		return model.Plant{}, plant.ErrPlantArchived
	}

	p.Species = cp.Species
	p.Nickname = cp.Nickname
	p.WateringInterval = cp.WateringInterval
	p.FeedingInterval = cp.FeedingInterval
	p.PhotoRef = cp.PhotoRef
	p.HealthState = cp.HealthState

	if err := schedule.Validate(p); err != nil {
		return model.Plant{}, err
	}

	if err := s.plants.UpdateCareProfile(ctx, p); err != nil {
		return model.Plant{}, err
	}

	return p, nil
}

// ArchivePlant removes a plant from the user's inventory and cancels its open
// reminders. The event log is kept.
func (s *Service) ArchivePlant(ctx context.Context, plantID uuid.UUID) error {
	now := s.now()

	if err := s.plants.ArchivePlant(ctx, plantID, now); err != nil {
		return err
	}

	ids, err := s.deliveries.CancelOpen(ctx, plantID, now)
	if err != nil {
		// the poll cycle no longer sees archived plants, so leftovers stay inert
		zlog.Logger.Error().Err(err).Str("plant_id", plantID.String()).Msg("failed to cancel reminders of archived plant")
		return nil
	}
	s.cache.SetMany(ctx, ids, model.StatusCancelled)

	return nil
}

// PlantView returns a plant with its next due timestamps and the kinds whose
// current obligation was escalated.
func (s *Service) PlantView(ctx context.Context, plantID uuid.UUID) (model.PlantView, error) {
	p, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return model.PlantView{}, err
	}

	return s.view(ctx, p)
}

// ListPlantViews returns the views of all active plants of a user.
func (s *Service) ListPlantViews(ctx context.Context, userID int64) ([]model.PlantView, error) {
	plants, err := s.plants.ListPlantsByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	views := make([]model.PlantView, 0, len(plants))
	for _, p := range plants {
		v, err := s.view(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, nil
}

func (s *Service) view(ctx context.Context, p model.Plant) (model.PlantView, error) {
	v := model.PlantView{Plant: p, Overdue: make(map[model.ActionKind]bool)}
	if p.Archived() {
		return v, nil
	}

	tail, err := s.events.Tail(ctx, p.ID)
	if err != nil {
		return model.PlantView{}, fmt.Errorf("read event log: %w", err)
	}

	v.Due, err = s.calc.ComputeDue(p, tail)
	if err != nil {
		return model.PlantView{}, err
	}

	for _, e := range v.Due.Entries() {
		latest, err := s.deliveries.LatestFor(ctx, p.ID, e.Kind)
		if err != nil {
			return model.PlantView{}, fmt.Errorf("read deliveries: %w", err)
		}
		// a care action after the escalation moves the entry past it
		if latest != nil && latest.Status == model.StatusEscalated && !latest.DueAt.Before(e.DueAt) {
			v.Overdue[e.Kind] = true
		}
	}

	return v, nil
}
