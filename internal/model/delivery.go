package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the state of a reminder delivery.
type DeliveryStatus string

const (
	StatusPending      DeliveryStatus = "pending"
	StatusSent         DeliveryStatus = "sent"
	StatusAcknowledged DeliveryStatus = "acknowledged"
	StatusSnoozed      DeliveryStatus = "snoozed"
	StatusEscalated    DeliveryStatus = "escalated"
	StatusExpired      DeliveryStatus = "expired"
	StatusCancelled    DeliveryStatus = "cancelled"
)

// Open reports whether the delivery can still change state through user action.
func (s DeliveryStatus) Open() bool {
	return s == StatusPending || s == StatusSent
}

// Resolved reports whether the delivery counts towards adherence.
func (s DeliveryStatus) Resolved() bool {
	return s == StatusAcknowledged || s == StatusExpired || s == StatusEscalated
}

// Escalation reasons.
const (
	EscalationDeliveryFailed = "delivery_failed"
	EscalationSnoozeLimit    = "snooze_limit"
)

// ReminderDelivery tracks the notification of one due obligation.
type ReminderDelivery struct {
	ID               uuid.UUID      `json:"id"`
	PlantID          uuid.UUID      `json:"plant_id"`
	UserID           int64          `json:"user_id"`
	Kind             ActionKind     `json:"kind"`   // water or feed
	DueAt            time.Time      `json:"due_at"` // due timestamp valid at creation
	Status           DeliveryStatus `json:"status"`
	Attempts         int            `json:"attempts"`               // hand-off attempts in the current window
	WindowStartedAt  *time.Time     `json:"window_started_at"`      // first attempt of the current window
	LastAttemptAt    *time.Time     `json:"last_attempt_at"`        // most recent hand-off attempt
	SentAt           *time.Time     `json:"sent_at,omitempty"`      // hand-off succeeded
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`  // reached a terminal state
	SnoozeCount      int            `json:"snooze_count"`           // snoozes already spent on the obligation
	EscalationReason string         `json:"escalation_reason,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// DeliveryKey is the uniqueness triple of a delivery.
type DeliveryKey struct {
	PlantID uuid.UUID
	Kind    ActionKind
	DueAt   time.Time
}

// Key returns the uniqueness triple of d.
func (d ReminderDelivery) Key() DeliveryKey {
	return DeliveryKey{PlantID: d.PlantID, Kind: d.Kind, DueAt: d.DueAt.UTC()}
}

// ReminderItem is one obligation inside an outbound batch.
type ReminderItem struct {
	DeliveryID uuid.UUID  `json:"delivery_id"`
	Attempt    int        `json:"attempt"` // together with DeliveryID forms the idempotency key
	PlantID    uuid.UUID  `json:"plant_id"`
	PlantName  string     `json:"plant_name"`
	Kind       ActionKind `json:"kind"`
	DueAt      time.Time  `json:"due_at"`
}

// ReminderBatch groups the obligations of one user in one poll bucket.
type ReminderBatch struct {
	UserID  int64          `json:"user_id"`
	Bucket  time.Time      `json:"bucket"`
	Channel string         `json:"channel"`
	Address string         `json:"address"`
	Zone    string         `json:"zone"`
	Items   []ReminderItem `json:"items"`
}
