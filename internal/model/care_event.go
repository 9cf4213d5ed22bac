package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActionKind is the closed set of care actions recorded in the event log.
type ActionKind string

const (
	ActionWater  ActionKind = "water"
	ActionFeed   ActionKind = "feed"
	ActionSkip   ActionKind = "skip"
	ActionSnooze ActionKind = "snooze"
)

// CareKinds lists the kinds that carry a recurring schedule.
var CareKinds = []ActionKind{ActionWater, ActionFeed}

// ParseActionKind converts a wire value into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	switch k := ActionKind(s); k {
	case ActionWater, ActionFeed, ActionSkip, ActionSnooze:
		return k, nil
	default:
		return "", fmt.Errorf("unknown action kind %q", s)
	}
}

// IsCare reports whether the kind is one that has its own schedule.
func (k ActionKind) IsCare() bool {
	return k == ActionWater || k == ActionFeed
}

// IsMarker reports whether the kind only annotates another kind's schedule.
func (k ActionKind) IsMarker() bool {
	return k == ActionSkip || k == ActionSnooze
}

// CareEvent is an immutable record of a care action applied to a plant.
type CareEvent struct {
	ID         uuid.UUID  `json:"id"`          // unique identifier of the event
	Seq        int64      `json:"seq"`         // insertion sequence, breaks timestamp ties
	PlantID    uuid.UUID  `json:"plant_id"`    // plant the action was applied to
	Kind       ActionKind `json:"kind"`        // water, feed, skip or snooze
	Target     ActionKind `json:"target"`      // schedule affected: equals Kind for water/feed
	OccurredAt time.Time  `json:"occurred_at"` // when the action happened, UTC
	Note       string     `json:"note,omitempty"`
	PhotoRef   string     `json:"photo_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Before reports whether e is ordered before o in the log.
func (e CareEvent) Before(o CareEvent) bool {
	if !e.OccurredAt.Equal(o.OccurredAt) {
		return e.OccurredAt.Before(o.OccurredAt)
	}
	return e.Seq < o.Seq
}

// EventTail is the slice of a plant's log the schedule calculator needs:
// the latest event of every care kind and the snoozes that may still apply.
type EventTail struct {
	Last    map[ActionKind]*CareEvent // latest water / feed event
	Snoozes map[ActionKind][]CareEvent // snoozes per target kind, in log order
}

// NewEventTail returns an empty tail.
func NewEventTail() EventTail {
	return EventTail{
		Last:    make(map[ActionKind]*CareEvent),
		Snoozes: make(map[ActionKind][]CareEvent),
	}
}
