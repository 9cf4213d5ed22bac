package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
)

// Events is the in-memory care event log.
type Events struct {
	db *DB
}

func (e *Events) Append(_ context.Context, ev model.CareEvent) (model.CareEvent, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	if _, err := e.db.activePlant(ev.PlantID); err != nil {
		return model.CareEvent{}, err
	}

	e.db.seq++
	ev.ID = uuid.New()
	ev.Seq = e.db.seq
	ev.OccurredAt = ev.OccurredAt.UTC()
	ev.CreatedAt = e.db.now()

	e.db.events = append(e.db.events, ev)
	return ev, nil
}

func (e *Events) Latest(_ context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.CareEvent, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	return e.db.latest(plantID, kind), nil
}

func (e *Events) Tail(_ context.Context, plantID uuid.UUID) (model.EventTail, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	tail := model.NewEventTail()
	for _, kind := range model.CareKinds {
		last := e.db.latest(plantID, kind)
		if last != nil {
			tail.Last[kind] = last
		}

		var snoozes []model.CareEvent
		for _, ev := range e.db.events {
			if ev.PlantID != plantID || ev.Kind != model.ActionSnooze || ev.Target != kind {
				continue
			}
			if last != nil && !last.Before(ev) {
				continue
			}
			snoozes = append(snoozes, ev)
		}

		sortEvents(snoozes)
		tail.Snoozes[kind] = snoozes
	}

	return tail, nil
}

func (e *Events) ListByPlant(_ context.Context, plantID uuid.UUID, from, to time.Time) ([]model.CareEvent, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	var out []model.CareEvent
	for _, ev := range e.db.events {
		if ev.PlantID == plantID && inRange(ev.OccurredAt, from, to) {
			out = append(out, ev)
		}
	}

	sortEvents(out)
	return out, nil
}

func (e *Events) ListByUser(_ context.Context, userID int64, from, to time.Time) ([]model.CareEvent, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	var out []model.CareEvent
	for _, ev := range e.db.events {
		pl, ok := e.db.plants[ev.PlantID]
		if ok && pl.UserID == userID && inRange(ev.OccurredAt, from, to) {
			out = append(out, ev)
		}
	}

	sortEvents(out)
	return out, nil
}

// latest must be called with the lock held.
func (db *DB) latest(plantID uuid.UUID, kind model.ActionKind) *model.CareEvent {
	var last *model.CareEvent
	for i := range db.events {
		ev := db.events[i]
		if ev.PlantID != plantID || ev.Kind != kind {
			continue
		}
		if last == nil || last.Before(ev) {
			last = &ev
		}
	}
	return last
}
