package care

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
)

// Action is a care action reported by the user.
type Action struct {
	PlantID    uuid.UUID
	Kind       model.ActionKind
	Target     model.ActionKind // schedule a skip or snooze applies to
	OccurredAt time.Time        // defaults to now
	Note       string
	PhotoRef   string
}

// Snoozed is the outcome of a successful snooze.
type Snoozed struct {
	Delivery model.ReminderDelivery
	RemindAt time.Time
}

// RecordCareAction appends an action to the plant's log. A water or feed
// action resolves the open reminders of that kind, unless it is backdated
// behind a later action of the same kind and so leaves the due date unchanged.
func (s *Service) RecordCareAction(ctx context.Context, a Action) (model.CareEvent, error) {
	e, err := s.normalize(a)
	if err != nil {
		return model.CareEvent{}, err
	}

	e, err = s.appendEvent(ctx, e)
	if err != nil {
		return model.CareEvent{}, err
	}

	if e.Kind.IsCare() {
		s.acknowledgeOpen(ctx, e)
	}

	zlog.Logger.Info().
		Str("plant_id", e.PlantID.String()).
		Str("kind", string(e.Kind)).
		Str("target", string(e.Target)).
		Msg("care action recorded")

	return e, nil
}

func (s *Service) normalize(a Action) (model.CareEvent, error) {
	e := model.CareEvent{
		PlantID:    a.PlantID,
		Kind:       a.Kind,
		Target:     a.Target,
		OccurredAt: a.OccurredAt.UTC(),
		Note:       a.Note,
		PhotoRef:   a.PhotoRef,
	}
	if a.OccurredAt.IsZero() {
		e.OccurredAt = s.now()
	}

	switch {
	case a.Kind.IsCare():
		if a.Target != "" && a.Target != a.Kind {
			return model.CareEvent{}, fmt.Errorf("%w: %s cannot target %s", ErrInvalidAction, a.Kind, a.Target)
		}
		e.Target = a.Kind
	case a.Kind.IsMarker():
		if !a.Target.IsCare() {
			return model.CareEvent{}, fmt.Errorf("%w: %s needs a water or feed target", ErrInvalidAction, a.Kind)
		}
	default:
		return model.CareEvent{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
	}

	return e, nil
}

// appendEvent writes to the log, retrying infrastructure failures only.
func (s *Service) appendEvent(ctx context.Context, e model.CareEvent) (model.CareEvent, error) {
	var (
		stored    model.CareEvent
		rejection error
	)

	err := retry.Do(func() error {
		var err error
		stored, err = s.events.Append(ctx, e)
		if errors.Is(err, plant.ErrUnknownPlant) || errors.Is(err, plant.ErrPlantArchived) {
			rejection = err
			return nil
		}
		return err
	}, s.strategy)
	if rejection != nil {
		return model.CareEvent{}, rejection
	}
	if err != nil {
		return model.CareEvent{}, fmt.Errorf("append care event: %w", err)
	}

	return stored, nil
}

func (s *Service) acknowledgeOpen(ctx context.Context, e model.CareEvent) {
	tail, err := s.events.Tail(ctx, e.PlantID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("plant_id", e.PlantID.String()).Msg("failed to read event tail, acknowledging anyway")
	} else if last := tail.Last[e.Kind]; last != nil && e.Before(*last) {
		zlog.Logger.Info().
			Str("plant_id", e.PlantID.String()).
			Str("kind", string(e.Kind)).
			Time("latest", last.OccurredAt).
			Msg("backdated action, open reminders kept")
		return
	}

	ids, err := s.deliveries.AcknowledgeOpen(ctx, e.PlantID, e.Kind, e.OccurredAt)
	if err != nil {
		// the next poll derives the new due from the log either way
		zlog.Logger.Error().Err(err).Str("plant_id", e.PlantID.String()).Msg("failed to acknowledge open reminders")
		return
	}
	s.cache.SetMany(ctx, ids, model.StatusAcknowledged)
}

// AcknowledgeReminder records that the user performed the reminded action.
// The matching care event is appended first so the schedule moves on; the
// delivery is only resolved once the event is in the log. A failed append
// leaves the reminder open for another try.
func (s *Service) AcknowledgeReminder(ctx context.Context, id uuid.UUID) (model.CareEvent, error) {
	now := s.now()

	d, err := s.actionable(ctx, id, now)
	if err != nil {
		return model.CareEvent{}, err
	}

	e, err := s.appendEvent(ctx, model.CareEvent{
		PlantID:    d.PlantID,
		Kind:       d.Kind,
		Target:     d.Kind,
		OccurredAt: now,
	})
	if err != nil {
		return model.CareEvent{}, err
	}

	if err := s.transition(ctx, d, model.StatusAcknowledged, "", now); err != nil {
		return model.CareEvent{}, err
	}

	zlog.Logger.Info().Str("delivery_id", id.String()).Msg("reminder acknowledged")

	return e, nil
}

// SnoozeReminder postpones a sent reminder by the snooze duration. Once the
// obligation has used up its snoozes, the request escalates it instead and
// ErrSnoozeLimitReached is returned.
func (s *Service) SnoozeReminder(ctx context.Context, id uuid.UUID) (Snoozed, error) {
	now := s.now()

	d, err := s.actionable(ctx, id, now)
	if err != nil {
		return Snoozed{}, err
	}
	if d.Status != model.StatusSent {
		return Snoozed{}, ErrNotActionable
	}

	if d.SnoozeCount >= s.cfg.MaxSnoozes {
		if err := s.transition(ctx, d, model.StatusEscalated, model.EscalationSnoozeLimit, now); err != nil {
			return Snoozed{}, err
		}
		zlog.Logger.Warn().Str("delivery_id", id.String()).Int("snoozes", d.SnoozeCount).Msg("snooze limit reached, reminder escalated")
		return Snoozed{}, ErrSnoozeLimitReached
	}

	// a snoozed delivery must always have its event in the log
	if _, err := s.appendEvent(ctx, model.CareEvent{
		PlantID:    d.PlantID,
		Kind:       model.ActionSnooze,
		Target:     d.Kind,
		OccurredAt: now,
	}); err != nil {
		return Snoozed{}, err
	}

	if err := s.transition(ctx, d, model.StatusSnoozed, "", now); err != nil {
		return Snoozed{}, err
	}

	d.Status = model.StatusSnoozed
	d.ResolvedAt = &now

	return Snoozed{Delivery: d, RemindAt: now.Add(s.calc.SnoozeDuration())}, nil
}

// actionable loads a delivery and checks that the user may still answer it.
// A sent reminder past its expiry window is expired on the spot.
func (s *Service) actionable(ctx context.Context, id uuid.UUID, now time.Time) (model.ReminderDelivery, error) {
	d, err := s.deliveries.Get(ctx, id)
	if err != nil {
		return model.ReminderDelivery{}, err
	}

	switch {
	case d.Status == model.StatusExpired:
		return model.ReminderDelivery{}, ErrExpiredDelivery
	case !d.Status.Open():
		return model.ReminderDelivery{}, ErrNotActionable
	}

	if d.Status == model.StatusSent && d.SentAt != nil && !now.Before(d.SentAt.Add(s.cfg.ExpiryWindow)) {
		err := s.deliveries.Transition(ctx, d.ID, model.StatusSent, model.StatusExpired, "", now)
		if err != nil && !errors.Is(err, delivery.ErrStaleTransition) {
			return model.ReminderDelivery{}, err
		}
		s.cache.Set(ctx, d.ID, model.StatusExpired)
		return model.ReminderDelivery{}, ErrExpiredDelivery
	}

	return d, nil
}

// transition moves d out of its current status. Losing the race to another
// writer is reported as ErrNotActionable.
func (s *Service) transition(ctx context.Context, d model.ReminderDelivery, to model.DeliveryStatus, reason string, at time.Time) error {
	err := s.deliveries.Transition(ctx, d.ID, d.Status, to, reason, at)
	if errors.Is(err, delivery.ErrStaleTransition) {
		return ErrNotActionable
	}
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}

	s.cache.Set(ctx, d.ID, to)

	return nil
}

// GetDeliveryStatus returns the current status of a reminder.
func (s *Service) GetDeliveryStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error) {
	if status, ok := s.cache.Get(ctx, id); ok {
		return status, nil
	}

	d, err := s.deliveries.Get(ctx, id)
	if err != nil {
		return "", err
	}
	s.cache.Set(ctx, id, d.Status)

	return d.Status, nil
}
