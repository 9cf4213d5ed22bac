package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

// schedulePlant creates a pending delivery for every obligation of the plant
// that is due and not yet tracked. It returns the number of rows created.
func (d *Dispatcher) schedulePlant(ctx context.Context, p model.Plant, now time.Time) (int, error) {
	tail, err := d.events.Tail(ctx, p.ID)
	if err != nil {
		return 0, err
	}

	due, err := d.calc.ComputeDue(p, tail)
	if err != nil {
		// bad intervals are reported to whoever edits the plant
		d.log.Warn().Err(err).Str("plant_id", p.ID.String()).Msg("skipping plant with invalid schedule")
		return 0, nil
	}

	created := 0
	for _, e := range due.Entries() {
		ok, err := d.ensureDelivery(ctx, p, e, now)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// ensureDelivery keeps at most one open delivery per plant and kind. After an
// expired delivery the unmet obligation moves to the next point of its baseline
// series.
func (d *Dispatcher) ensureDelivery(ctx context.Context, p model.Plant, e model.ScheduleEntry, now time.Time) (bool, error) {
	if e.DueAt.After(now) {
		return false, nil
	}

	latest, err := d.deliveries.LatestFor(ctx, p.ID, e.Kind)
	if err != nil {
		return false, err
	}

	dueAt := e.DueAt
	snoozes := e.SnoozeCount
	if latest != nil {
		if latest.Status.Open() {
			return false, nil
		}

		if !latest.DueAt.Before(dueAt) {
			if latest.Status != model.StatusExpired {
				return false, nil
			}

			next, ok := schedule.NextOccurrence(e, *p.Interval(e.Kind), latest.DueAt, now)
			if !ok {
				return false, nil
			}
			dueAt = next
		}

		snoozes = carriedSnoozes(e, *latest, snoozes)
	}

	rd, err := d.deliveries.Create(ctx, model.ReminderDelivery{
		PlantID:     p.ID,
		UserID:      p.UserID,
		Kind:        e.Kind,
		DueAt:       dueAt,
		SnoozeCount: snoozes,
	})
	if err != nil {
		if errors.Is(err, delivery.ErrDuplicateDelivery) {
			return false, nil
		}
		return false, err
	}

	d.cache.Set(ctx, rd.ID, model.StatusPending)
	d.log.Debug().Str("delivery_id", rd.ID.String()).Str("kind", string(rd.Kind)).Time("due_at", rd.DueAt).Msg("delivery created")

	return true, nil
}

// carriedSnoozes is the snooze count a new delivery starts with. A delivery
// that follows a snoozed one of the same anchor continues its count. One that
// replaces an expired occurrence is a separate obligation and starts at zero.
func carriedSnoozes(e model.ScheduleEntry, latest model.ReminderDelivery, fallback int) int {
	if latest.DueAt.Before(e.Anchor) {
		return fallback
	}

	switch latest.Status {
	case model.StatusSnoozed:
		return latest.SnoozeCount + 1
	case model.StatusExpired:
		return 0
	default:
		return fallback
	}
}

type claim struct {
	delivery model.ReminderDelivery
	attempt  int
}

// handOff claims one attempt on every delivery, sends them as one batch and
// records the outcome. Deliveries claimed by a concurrent cycle are dropped
// from the batch.
func (d *Dispatcher) handOff(ctx context.Context, u model.User, ready []model.ReminderDelivery, names map[uuid.UUID]string, now time.Time) Stats {
	var st Stats

	claims := make([]claim, 0, len(ready))
	for _, rd := range ready {
		attempt, windowStart := d.nextAttempt(rd, now)

		err := d.deliveries.ClaimAttempt(ctx, rd.ID, rd.Attempts, attempt, windowStart, now)
		if err != nil {
			if !errors.Is(err, delivery.ErrStaleTransition) {
				d.log.Error().Err(err).Str("delivery_id", rd.ID.String()).Msg("failed to claim attempt")
			}
			continue
		}

		claims = append(claims, claim{delivery: rd, attempt: attempt})
	}

	if len(claims) == 0 {
		return st
	}

	batch := model.ReminderBatch{
		UserID:  u.ID,
		Bucket:  now.Truncate(d.cfg.PollInterval),
		Channel: u.Preferences.Channel,
		Address: u.Preferences.Address,
		Zone:    u.Preferences.Timezone,
	}
	for _, c := range claims {
		batch.Items = append(batch.Items, model.ReminderItem{
			DeliveryID: c.delivery.ID,
			Attempt:    c.attempt,
			PlantID:    c.delivery.PlantID,
			PlantName:  names[c.delivery.PlantID],
			Kind:       c.delivery.Kind,
			DueAt:      c.delivery.DueAt,
		})
	}

	sendErr := d.channel.SendReminder(ctx, batch)

	for _, c := range claims {
		id := c.delivery.ID

		if sendErr == nil {
			if err := d.deliveries.MarkSent(ctx, id, c.attempt, now); err != nil {
				if !errors.Is(err, delivery.ErrStaleTransition) {
					d.log.Error().Err(err).Str("delivery_id", id.String()).Msg("failed to mark delivery sent")
				}
				continue
			}

			st.Sent++
			d.cache.Set(ctx, id, model.StatusSent)
			continue
		}

		st.Failed++
		if c.attempt < d.cfg.MaxAttempts {
			d.log.Warn().Err(sendErr).Str("delivery_id", id.String()).Int("attempt", c.attempt).Msg("hand-off failed, will retry")
			continue
		}

		err := d.deliveries.Transition(ctx, id, model.StatusPending, model.StatusEscalated, model.EscalationDeliveryFailed, now)
		if err != nil {
			if !errors.Is(err, delivery.ErrStaleTransition) {
				d.log.Error().Err(err).Str("delivery_id", id.String()).Msg("failed to escalate delivery")
			}
			continue
		}

		st.Escalated++
		d.cache.Set(ctx, id, model.StatusEscalated)
		d.log.Warn().Err(sendErr).Str("delivery_id", id.String()).Int("attempts", c.attempt).Msg("delivery escalated")
	}

	return st
}

// nextAttempt numbers the attempt about to be made. Failures older than the
// attempt window no longer count.
func (d *Dispatcher) nextAttempt(rd model.ReminderDelivery, now time.Time) (int, time.Time) {
	if rd.WindowStartedAt == nil || rd.Attempts == 0 {
		return 1, now
	}

	if d.cfg.AttemptWindow > 0 && now.Sub(*rd.WindowStartedAt) >= d.cfg.AttemptWindow {
		return 1, now
	}

	return rd.Attempts + 1, *rd.WindowStartedAt
}
