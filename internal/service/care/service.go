// Package care implements the operations the conversation layer invokes:
// plant registration and edits, care actions, reminder responses and reads
// of the derived schedule.
package care

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/plant-care/internal/cache"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

var (
	// ErrExpiredDelivery means the reminder expired before the user answered.
	ErrExpiredDelivery = errors.New("reminder expired")
	// ErrNotActionable means the reminder was already answered, cancelled or escalated.
	ErrNotActionable = errors.New("reminder no longer actionable")
	// ErrSnoozeLimitReached means the obligation was snoozed too often and got escalated.
	ErrSnoozeLimitReached = errors.New("snooze limit reached")
	ErrInvalidAction      = errors.New("invalid care action")
	ErrInvalidPreferences = errors.New("invalid preferences")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/care/mock.go -package=mocks
type plantRepository interface {
	UpsertUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	DeactivateUser(ctx context.Context, id int64, at time.Time) error
	CreatePlant(ctx context.Context, p model.Plant) (uuid.UUID, error)
	GetPlant(ctx context.Context, id uuid.UUID) (model.Plant, error)
	UpdateCareProfile(ctx context.Context, p model.Plant) error
	ArchivePlant(ctx context.Context, id uuid.UUID, at time.Time) error
	ListPlantsByUser(ctx context.Context, userID int64, includeArchived bool) ([]model.Plant, error)
}

type eventRepository interface {
	Append(ctx context.Context, e model.CareEvent) (model.CareEvent, error)
	Tail(ctx context.Context, plantID uuid.UUID) (model.EventTail, error)
}

type deliveryRepository interface {
	Get(ctx context.Context, id uuid.UUID) (model.ReminderDelivery, error)
	LatestFor(ctx context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.ReminderDelivery, error)
	Transition(ctx context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error
	AcknowledgeOpen(ctx context.Context, plantID uuid.UUID, kind model.ActionKind, at time.Time) ([]uuid.UUID, error)
	CancelOpen(ctx context.Context, plantID uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

// Config holds the reminder response rules.
type Config struct {
	MaxSnoozes   int
	ExpiryWindow time.Duration
}

type Service struct {
	plants     plantRepository
	events     eventRepository
	deliveries deliveryRepository
	cache      *cache.StatusCache
	calc       *schedule.Calculator
	cfg        Config
	strategy   retry.Strategy
	now        func() time.Time
}

// NewService creates the care service. strategy governs retries of event log
// writes that fail for infrastructure reasons. cache may be nil.
func NewService(
	plants plantRepository,
	events eventRepository,
	deliveries deliveryRepository,
	cache *cache.StatusCache,
	calc *schedule.Calculator,
	cfg Config,
	strategy retry.Strategy,
) *Service {
	return &Service{
		plants:     plants,
		events:     events,
		deliveries: deliveries,
		cache:      cache,
		calc:       calc,
		cfg:        cfg,
		strategy:   strategy,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
