package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
)

// Deliveries is the in-memory reminder delivery table.
type Deliveries struct {
	db *DB
}

func (d *Deliveries) Create(_ context.Context, rd model.ReminderDelivery) (model.ReminderDelivery, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	rd.DueAt = rd.DueAt.UTC()
	key := rd.Key()
	if _, ok := d.db.keys[key]; ok {
		return model.ReminderDelivery{}, delivery.ErrDuplicateDelivery
	}

	now := d.db.now()
	rd.ID = uuid.New()
	rd.Status = model.StatusPending
	rd.Attempts = 0
	rd.CreatedAt = now
	rd.UpdatedAt = now

	d.db.deliveries[rd.ID] = rd
	d.db.keys[key] = rd.ID
	return rd, nil
}

func (d *Deliveries) Get(_ context.Context, id uuid.UUID) (model.ReminderDelivery, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	rd, ok := d.db.deliveries[id]
	if !ok {
		return model.ReminderDelivery{}, delivery.ErrDeliveryNotFound
	}
	return rd, nil
}

func (d *Deliveries) LatestFor(_ context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.ReminderDelivery, error) {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	var latest *model.ReminderDelivery
	for _, rd := range d.db.deliveries {
		if rd.PlantID != plantID || rd.Kind != kind {
			continue
		}
		if latest == nil || rd.DueAt.After(latest.DueAt) {
			rd := rd
			latest = &rd
		}
	}
	return latest, nil
}

func (d *Deliveries) ListPendingByUser(_ context.Context, userID int64) ([]model.ReminderDelivery, error) {
	return d.filter(func(rd model.ReminderDelivery) bool {
		return rd.UserID == userID && rd.Status == model.StatusPending
	}), nil
}

func (d *Deliveries) ListByUser(_ context.Context, userID int64, from, to time.Time) ([]model.ReminderDelivery, error) {
	return d.filter(func(rd model.ReminderDelivery) bool {
		return rd.UserID == userID && inRange(rd.DueAt, from, to)
	}), nil
}

func (d *Deliveries) ClaimAttempt(_ context.Context, id uuid.UUID, seen, attempt int, windowStart, at time.Time) error {
	return d.update(id, func(rd *model.ReminderDelivery) bool {
		if rd.Status != model.StatusPending || rd.Attempts != seen {
			return false
		}
		rd.Attempts = attempt
		rd.WindowStartedAt = ptr(windowStart)
		rd.LastAttemptAt = ptr(at)
		rd.UpdatedAt = at.UTC()
		return true
	})
}

func (d *Deliveries) MarkSent(_ context.Context, id uuid.UUID, attempt int, at time.Time) error {
	return d.update(id, func(rd *model.ReminderDelivery) bool {
		if rd.Status != model.StatusPending || rd.Attempts != attempt {
			return false
		}
		rd.Status = model.StatusSent
		rd.SentAt = ptr(at)
		rd.UpdatedAt = at.UTC()
		return true
	})
}

func (d *Deliveries) Transition(_ context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error {
	return d.update(id, func(rd *model.ReminderDelivery) bool {
		if rd.Status != from {
			return false
		}
		rd.Status = to
		rd.EscalationReason = reason
		rd.ResolvedAt = ptr(at)
		rd.UpdatedAt = at.UTC()
		return true
	})
}

func (d *Deliveries) AcknowledgeOpen(_ context.Context, plantID uuid.UUID, kind model.ActionKind, at time.Time) ([]uuid.UUID, error) {
	return d.resolveWhere(at, model.StatusAcknowledged, func(rd model.ReminderDelivery) bool {
		return rd.PlantID == plantID && rd.Kind == kind && rd.Status.Open()
	}), nil
}

func (d *Deliveries) CancelOpen(_ context.Context, plantID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	return d.resolveWhere(at, model.StatusCancelled, func(rd model.ReminderDelivery) bool {
		return rd.PlantID == plantID && (rd.Status.Open() || rd.Status == model.StatusEscalated)
	}), nil
}

func (d *Deliveries) ExpireSent(_ context.Context, sentBefore, at time.Time) ([]uuid.UUID, error) {
	return d.resolveWhere(at, model.StatusExpired, func(rd model.ReminderDelivery) bool {
		return rd.Status == model.StatusSent && rd.SentAt != nil && !rd.SentAt.After(sentBefore)
	}), nil
}

func (d *Deliveries) filter(keep func(model.ReminderDelivery) bool) []model.ReminderDelivery {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	var out []model.ReminderDelivery
	for _, rd := range d.db.deliveries {
		if keep(rd) {
			out = append(out, rd)
		}
	}

	sortDeliveries(out)
	return out
}

func (d *Deliveries) update(id uuid.UUID, apply func(*model.ReminderDelivery) bool) error {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	rd, ok := d.db.deliveries[id]
	if !ok || !apply(&rd) {
		return delivery.ErrStaleTransition
	}

	d.db.deliveries[id] = rd
	return nil
}

func (d *Deliveries) resolveWhere(at time.Time, to model.DeliveryStatus, match func(model.ReminderDelivery) bool) []uuid.UUID {
	d.db.mu.Lock()
	defer d.db.mu.Unlock()

	var ids []uuid.UUID
	for id, rd := range d.db.deliveries {
		if !match(rd) {
			continue
		}
		rd.Status = to
		rd.ResolvedAt = ptr(at)
		rd.UpdatedAt = at.UTC()
		d.db.deliveries[id] = rd
		ids = append(ids, id)
	}
	return ids
}
