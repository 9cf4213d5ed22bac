package delivery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/plant-care/internal/model"
)

var (
	// ErrDuplicateDelivery means a delivery for the (plant, kind, due) triple exists.
	// Callers treat it as a no-op.
	ErrDuplicateDelivery = errors.New("duplicate delivery")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	// ErrStaleTransition means the row was not in the expected state any more.
	ErrStaleTransition = errors.New("stale delivery transition")
)

// Repository provides methods to interact with the reminder_deliveries table.
// Every state change is a single-row compare-and-set on the expected status.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a pending delivery unless one exists for the same triple.
func (r *Repository) Create(ctx context.Context, d model.ReminderDelivery) (model.ReminderDelivery, error) {
	query := `
		INSERT INTO reminder_deliveries (
		    plant_id, user_id, kind, due_at, status, snooze_count
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (plant_id, kind, due_at) DO NOTHING
		RETURNING id, created_at;
    `

	d.DueAt = d.DueAt.UTC()
	d.Status = model.StatusPending

	err := r.db.QueryRowContext(
		ctx, query, d.PlantID, d.UserID, string(d.Kind), d.DueAt, string(d.Status), d.SnoozeCount,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderDelivery{}, ErrDuplicateDelivery
		}

		return model.ReminderDelivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	d.UpdatedAt = d.CreatedAt
	return d, nil
}

const deliveryColumns = `id, plant_id, user_id, kind, due_at, status, attempts, window_started_at,
		       last_attempt_at, sent_at, resolved_at, snooze_count, escalation_reason,
		       created_at, updated_at`

// Get retrieves a delivery by ID.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.ReminderDelivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE id = $1;
    `

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderDelivery{}, ErrDeliveryNotFound
		}

		return model.ReminderDelivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	return d, nil
}

// LatestFor returns the delivery with the latest due timestamp for a plant and
// kind, or nil when there is none.
func (r *Repository) LatestFor(ctx context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.ReminderDelivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE plant_id = $1 AND kind = $2
		ORDER BY due_at DESC
		LIMIT 1;
    `

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, plantID, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get latest delivery: %w", err)
	}

	return &d, nil
}

// ListPendingByUser returns the user's deliveries waiting for hand-off.
func (r *Repository) ListPendingByUser(ctx context.Context, userID int64) ([]model.ReminderDelivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY due_at, id;
    `

	return r.list(ctx, query, userID)
}

// ListByUser returns the user's deliveries with due_at in [from, to).
func (r *Repository) ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.ReminderDelivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM reminder_deliveries
		WHERE user_id = $1 AND due_at >= $2 AND due_at < $3
		ORDER BY due_at, id;
    `

	return r.list(ctx, query, userID, from.UTC(), to.UTC())
}

// ClaimAttempt reserves hand-off attempt number `attempt` for a pending delivery
// whose attempt counter still reads `seen`. Only one poller wins the claim.
func (r *Repository) ClaimAttempt(ctx context.Context, id uuid.UUID, seen, attempt int, windowStart, at time.Time) error {
	query := `
		UPDATE reminder_deliveries
		SET attempts = $3, window_started_at = $4, last_attempt_at = $5, updated_at = $5
		WHERE id = $1 AND status = 'pending' AND attempts = $2;
    `

	return r.exec(ctx, query, id, seen, attempt, windowStart.UTC(), at.UTC())
}

// MarkSent moves a pending delivery to sent if the claimed attempt is current.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, attempt int, at time.Time) error {
	query := `
		UPDATE reminder_deliveries
		SET status = 'sent', sent_at = $3, updated_at = $3
		WHERE id = $1 AND status = 'pending' AND attempts = $2;
    `

	return r.exec(ctx, query, id, attempt, at.UTC())
}

// Transition moves a delivery from one status to another terminal status.
// reason is stored for escalations.
func (r *Repository) Transition(ctx context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error {
	query := `
		UPDATE reminder_deliveries
		SET status = $3, escalation_reason = $4, resolved_at = $5, updated_at = $5
		WHERE id = $1 AND status = $2;
    `

	return r.exec(ctx, query, id, string(from), string(to), reason, at.UTC())
}

// AcknowledgeOpen marks every open delivery of a plant and kind acknowledged.
func (r *Repository) AcknowledgeOpen(ctx context.Context, plantID uuid.UUID, kind model.ActionKind, at time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE reminder_deliveries
		SET status = 'acknowledged', resolved_at = $3, updated_at = $3
		WHERE plant_id = $1 AND kind = $2 AND status IN ('pending', 'sent')
		RETURNING id;
    `

	return r.ids(ctx, query, plantID, string(kind), at.UTC())
}

// CancelOpen cancels every non-terminal delivery of an archived plant.
func (r *Repository) CancelOpen(ctx context.Context, plantID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE reminder_deliveries
		SET status = 'cancelled', resolved_at = $2, updated_at = $2
		WHERE plant_id = $1 AND status IN ('pending', 'sent', 'escalated')
		RETURNING id;
    `

	return r.ids(ctx, query, plantID, at.UTC())
}

// ExpireSent expires sent deliveries nobody answered since sentBefore.
func (r *Repository) ExpireSent(ctx context.Context, sentBefore, at time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE reminder_deliveries
		SET status = 'expired', resolved_at = $2, updated_at = $2
		WHERE status = 'sent' AND sent_at <= $1
		RETURNING id;
    `

	return r.ids(ctx, query, sentBefore.UTC(), at.UTC())
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrStaleTransition
	}

	return nil
}

func (r *Repository) ids(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update deliveries: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]model.ReminderDelivery, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []model.ReminderDelivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}

		deliveries = append(deliveries, d)
	}

	return deliveries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDelivery(s scanner) (model.ReminderDelivery, error) {
	var (
		d                                      model.ReminderDelivery
		kind, status                           string
		windowStart, lastAttempt, sent, solved sql.NullTime
	)

	err := s.Scan(
		&d.ID, &d.PlantID, &d.UserID, &kind, &d.DueAt, &status, &d.Attempts, &windowStart,
		&lastAttempt, &sent, &solved, &d.SnoozeCount, &d.EscalationReason,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return model.ReminderDelivery{}, err
	}

	d.Kind = model.ActionKind(kind)
	d.Status = model.DeliveryStatus(status)
	d.DueAt = d.DueAt.UTC()
	d.WindowStartedAt = nullTime(windowStart)
	d.LastAttemptAt = nullTime(lastAttempt)
	d.SentAt = nullTime(sent)
	d.ResolvedAt = nullTime(solved)

	return d, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
