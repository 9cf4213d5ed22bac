package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is a derived due timestamp for one plant and care kind.
// It is never stored; it is recomputed from the plant and its event log.
type ScheduleEntry struct {
	PlantID     uuid.UUID  `json:"plant_id"`
	Kind        ActionKind `json:"kind"`
	Anchor      time.Time  `json:"anchor"`       // last event of the kind or acquisition date
	BaselineDue time.Time  `json:"baseline_due"` // anchor + interval
	DueAt       time.Time  `json:"due_at"`       // baseline shifted by the latest snooze
	Snoozed     bool       `json:"snoozed"`
	SnoozeCount int        `json:"snooze_count"` // snoozes recorded since the anchor
}

// Due holds the next due entries of a plant; nil means no schedule for that kind.
type Due struct {
	Water *ScheduleEntry `json:"water"`
	Feed  *ScheduleEntry `json:"feed"`
}

// For returns the entry of a care kind.
func (d Due) For(kind ActionKind) *ScheduleEntry {
	switch kind {
	case ActionWater:
		return d.Water
	case ActionFeed:
		return d.Feed
	default:
		return nil
	}
}

// Entries returns the non-nil entries.
func (d Due) Entries() []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range []*ScheduleEntry{d.Water, d.Feed} {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// PlantView is what the conversation layer renders for a plant.
type PlantView struct {
	Plant   Plant               `json:"plant"`
	Due     Due                 `json:"due"`
	Overdue map[ActionKind]bool `json:"overdue,omitempty"` // escalated obligations
}
