// Package memory is a process-local implementation of the plant, event and
// delivery repositories. It enforces the same guards as the PostgreSQL schema
// (archived plants reject events, one delivery per plant/kind/due triple,
// compare-and-set transitions) and is used for local runs and tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
)

// DB holds all tables behind one mutex.
type DB struct {
	mu sync.Mutex

	users      map[int64]model.User
	plants     map[uuid.UUID]model.Plant
	events     []model.CareEvent
	seq        int64
	deliveries map[uuid.UUID]model.ReminderDelivery
	keys       map[model.DeliveryKey]uuid.UUID

	now func() time.Time
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{
		users:      make(map[int64]model.User),
		plants:     make(map[uuid.UUID]model.Plant),
		deliveries: make(map[uuid.UUID]model.ReminderDelivery),
		keys:       make(map[model.DeliveryKey]uuid.UUID),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Plants returns the care profile store view.
func (db *DB) Plants() *Plants {
	return &Plants{db: db}
}

// Events returns the event log view.
func (db *DB) Events() *Events {
	return &Events{db: db}
}

// Deliveries returns the reminder delivery view.
func (db *DB) Deliveries() *Deliveries {
	return &Deliveries{db: db}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func sortEvents(events []model.CareEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Before(events[j])
	})
}

func sortDeliveries(ds []model.ReminderDelivery) {
	sort.SliceStable(ds, func(i, j int) bool {
		if !ds[i].DueAt.Equal(ds[j].DueAt) {
			return ds[i].DueAt.Before(ds[j].DueAt)
		}
		return ds[i].ID.String() < ds[j].ID.String()
	})
}

func ptr(t time.Time) *time.Time {
	t = t.UTC()
	return &t
}
