package model

import (
	"time"

	"github.com/google/uuid"
)

// HealthState is the classifier's reading of a plant's current condition.
type HealthState string

const (
	StateHealthy      HealthState = "healthy"
	StateFlowering    HealthState = "flowering"
	StateActiveGrowth HealthState = "active_growth"
	StateDormancy     HealthState = "dormancy"
	StateStress       HealthState = "stress"
	StateAdaptation   HealthState = "adaptation"
)

// Plant is a user's plant together with its care parameters.
type Plant struct {
	ID               uuid.UUID   `json:"id"`                          // unique identifier of the plant
	UserID           int64       `json:"user_id"`                     // owner, a plant belongs to exactly one user
	Species          string      `json:"species"`                     // species label from the classifier or the user
	Nickname         string      `json:"nickname,omitempty"`          // name the user gave the plant
	AcquiredAt       time.Time   `json:"acquired_at"`                 // schedule anchor before any care event
	WateringInterval *int        `json:"watering_interval,omitempty"` // days, nil when no watering schedule
	FeedingInterval  *int        `json:"feeding_interval,omitempty"`  // days, nil when no feeding schedule
	PhotoRef         string      `json:"photo_ref,omitempty"`         // current photo reference
	HealthState      HealthState `json:"health_state,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	ArchivedAt       *time.Time  `json:"archived_at,omitempty"` // set when the user removes the plant
}

// Archived reports whether the plant was removed by its owner.
func (p Plant) Archived() bool {
	return p.ArchivedAt != nil
}

// Interval returns the configured interval for a care kind in days.
func (p Plant) Interval(kind ActionKind) *int {
	switch kind {
	case ActionWater:
		return p.WateringInterval
	case ActionFeed:
		return p.FeedingInterval
	default:
		return nil
	}
}

// Days is a helper for building optional intervals.
func Days(n int) *int {
	return &n
}
