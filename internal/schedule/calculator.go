// Package schedule derives next-due timestamps for plant care.
//
// Everything here is pure: the same plant and event tail always produce the same
// entries, so the dispatcher can call it on every poll without side effects.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/plant-care/internal/model"
)

// Day is the unit care intervals are expressed in.
const Day = 24 * time.Hour

// ErrInvalidScheduleConfig is returned for zero or negative intervals.
var ErrInvalidScheduleConfig = errors.New("invalid schedule config")

// Calculator computes due timestamps. The snooze duration is the only setting.
type Calculator struct {
	snooze time.Duration
}

// NewCalculator creates a Calculator that shifts snoozed obligations by snooze.
func NewCalculator(snooze time.Duration) *Calculator {
	return &Calculator{snooze: snooze}
}

// SnoozeDuration returns the configured snooze shift.
func (c *Calculator) SnoozeDuration() time.Duration {
	return c.snooze
}

// Validate checks the care intervals of a plant.
func Validate(p model.Plant) error {
	for _, kind := range model.CareKinds {
		iv := p.Interval(kind)
		if iv != nil && *iv <= 0 {
			return fmt.Errorf("%w: %s interval must be positive, got %d", ErrInvalidScheduleConfig, kind, *iv)
		}
	}

	return nil
}

// ComputeDue returns the next due entry for every care kind of the plant.
//
// A prior event of the kind anchors the schedule, otherwise the acquisition date
// does. SKIP events are ignored. The latest SNOOZE newer than the anchor moves the
// effective due date forward but never the baseline.
func (c *Calculator) ComputeDue(p model.Plant, tail model.EventTail) (model.Due, error) {
	if err := Validate(p); err != nil {
		return model.Due{}, err
	}

	return model.Due{
		Water: c.entry(p, model.ActionWater, tail),
		Feed:  c.entry(p, model.ActionFeed, tail),
	}, nil
}

func (c *Calculator) entry(p model.Plant, kind model.ActionKind, tail model.EventTail) *model.ScheduleEntry {
	iv := p.Interval(kind)
	if iv == nil {
		return nil
	}

	anchor := p.AcquiredAt.UTC()
	last := tail.Last[kind]
	if last != nil && last.Kind == kind {
		anchor = last.OccurredAt.UTC()
	} else {
		last = nil
	}

	baseline := anchor.Add(time.Duration(*iv) * Day)
	e := &model.ScheduleEntry{
		PlantID:     p.ID,
		Kind:        kind,
		Anchor:      anchor,
		BaselineDue: baseline,
		DueAt:       baseline,
	}

	var latest *model.CareEvent
	for i := range tail.Snoozes[kind] {
		s := tail.Snoozes[kind][i]
		if s.Kind != model.ActionSnooze || s.Target != kind {
			continue
		}
		if last != nil && !last.Before(s) {
			continue
		}
		if last == nil && s.OccurredAt.Before(anchor) {
			continue
		}

		e.SnoozeCount++
		if latest == nil || latest.Before(s) {
			latest = &s
		}
	}

	if latest != nil {
		shifted := latest.OccurredAt.UTC().Add(c.snooze)
		if shifted.After(e.DueAt) {
			e.DueAt = shifted
			e.Snoozed = true
		}
	}

	return e
}

// NextOccurrence returns the point of the baseline series (baseline + n*interval)
// that replaces an unmet occurrence due at `after`. It is the first point after
// `after`, or, when several points have already passed by now, the latest of them.
// It reports false only for a non-positive interval.
func NextOccurrence(e model.ScheduleEntry, intervalDays int, after, now time.Time) (time.Time, bool) {
	if intervalDays <= 0 {
		return time.Time{}, false
	}

	step := time.Duration(intervalDays) * Day
	t := e.BaselineDue.UTC()
	after = after.UTC()
	now = now.UTC()

	if !t.After(after) {
		t = t.Add((after.Sub(t)/step + 1) * step)
	}
	if now.After(t) {
		t = t.Add(now.Sub(t) / step * step)
	}

	return t, true
}
