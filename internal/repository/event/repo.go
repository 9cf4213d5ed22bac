// Package event is the append-only care event log.
//
// There is no update or delete: corrections are new, compensating events.
// Events of one plant are ordered by (occurred_at, seq); seq is the insertion
// sequence and never changes.
package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
)

// Repository provides access to the care_events table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new event log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Append records a care event. The insert only happens when the plant exists and
// is not archived; otherwise plant.ErrUnknownPlant or plant.ErrPlantArchived is
// returned.
func (r *Repository) Append(ctx context.Context, e model.CareEvent) (model.CareEvent, error) {
	query := `
		INSERT INTO care_events (plant_id, kind, target, occurred_at, note, photo_ref)
		SELECT p.id, $2, $3, $4, $5, $6
		FROM plants p
		WHERE p.id = $1 AND p.archived_at IS NULL
		RETURNING id, seq, created_at;
    `

	e.OccurredAt = e.OccurredAt.UTC()
	err := r.db.QueryRowContext(
		ctx, query, e.PlantID, string(e.Kind), string(e.Target), e.OccurredAt, e.Note, e.PhotoRef,
	).Scan(&e.ID, &e.Seq, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CareEvent{}, r.rejectReason(ctx, e.PlantID)
		}

		return model.CareEvent{}, fmt.Errorf("failed to append care event: %w", err)
	}

	return e, nil
}

func (r *Repository) rejectReason(ctx context.Context, plantID uuid.UUID) error {
	query := `
		SELECT archived_at IS NOT NULL
		FROM plants
		WHERE id = $1;
    `

	var archived bool
	err := r.db.QueryRowContext(ctx, query, plantID).Scan(&archived)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plant.ErrUnknownPlant
		}

		return fmt.Errorf("failed to check plant: %w", err)
	}

	if archived {
		return plant.ErrPlantArchived
	}

	return plant.ErrUnknownPlant
}

const eventColumns = `e.id, e.seq, e.plant_id, e.kind, e.target, e.occurred_at, e.note, e.photo_ref, e.created_at`

// Latest returns the most recent event of a kind for a plant, or nil.
func (r *Repository) Latest(ctx context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.CareEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM care_events e
		WHERE e.plant_id = $1 AND e.kind = $2
		ORDER BY e.occurred_at DESC, e.seq DESC
		LIMIT 1;
    `

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, plantID, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get latest %s event: %w", kind, err)
	}

	return &e, nil
}

// Tail returns the latest water and feed events of a plant together with the
// snoozes recorded after each of them.
func (r *Repository) Tail(ctx context.Context, plantID uuid.UUID) (model.EventTail, error) {
	tail := model.NewEventTail()

	for _, kind := range model.CareKinds {
		last, err := r.Latest(ctx, plantID, kind)
		if err != nil {
			return model.EventTail{}, err
		}

		var (
			since time.Time
			seq   int64
		)
		if last != nil {
			tail.Last[kind] = last
			since, seq = last.OccurredAt, last.Seq
		}

		snoozes, err := r.snoozesSince(ctx, plantID, kind, since, seq)
		if err != nil {
			return model.EventTail{}, err
		}
		tail.Snoozes[kind] = snoozes
	}

	return tail, nil
}

func (r *Repository) snoozesSince(ctx context.Context, plantID uuid.UUID, target model.ActionKind, since time.Time, seq int64) ([]model.CareEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM care_events e
		WHERE e.plant_id = $1 AND e.kind = 'snooze' AND e.target = $2
		  AND (e.occurred_at, e.seq) > ($3, $4)
		ORDER BY e.occurred_at, e.seq;
    `

	return r.list(ctx, query, plantID, string(target), since.UTC(), seq)
}

// ListByPlant scans a plant's events with occurred_at in [from, to).
func (r *Repository) ListByPlant(ctx context.Context, plantID uuid.UUID, from, to time.Time) ([]model.CareEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM care_events e
		WHERE e.plant_id = $1 AND e.occurred_at >= $2 AND e.occurred_at < $3
		ORDER BY e.occurred_at, e.seq;
    `

	return r.list(ctx, query, plantID, from.UTC(), to.UTC())
}

// ListByUser scans the events of all of a user's plants with occurred_at in [from, to).
func (r *Repository) ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.CareEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM care_events e
		JOIN plants p ON p.id = e.plant_id
		WHERE p.user_id = $1 AND e.occurred_at >= $2 AND e.occurred_at < $3
		ORDER BY e.occurred_at, e.seq;
    `

	return r.list(ctx, query, userID, from.UTC(), to.UTC())
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]model.CareEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list care events: %w", err)
	}
	defer rows.Close()

	var events []model.CareEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.CareEvent, error) {
	var (
		e            model.CareEvent
		kind, target string
	)

	if err := s.Scan(&e.ID, &e.Seq, &e.PlantID, &kind, &target, &e.OccurredAt, &e.Note, &e.PhotoRef, &e.CreatedAt); err != nil {
		return model.CareEvent{}, err
	}

	e.Kind = model.ActionKind(kind)
	e.Target = model.ActionKind(target)
	e.OccurredAt = e.OccurredAt.UTC()

	return e, nil
}
