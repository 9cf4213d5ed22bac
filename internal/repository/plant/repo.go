package plant

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
	ErrUnknownPlant  = errors.New("unknown plant")
	ErrPlantArchived = errors.New("plant archived")
	ErrUserNotFound  = errors.New("user not found")
)

// Repository is the care profile store: users and their plants.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new plant repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpsertUser creates the user on first interaction or updates their settings.
func (r *Repository) UpsertUser(ctx context.Context, u model.User) (model.User, error) {
	query := `
		INSERT INTO users (
		    id, username, timezone, quiet_hours_start, quiet_hours_end,
		    reminder_time, reminders_enabled, channel, address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
		    username = EXCLUDED.username,
		    timezone = EXCLUDED.timezone,
		    quiet_hours_start = EXCLUDED.quiet_hours_start,
		    quiet_hours_end = EXCLUDED.quiet_hours_end,
		    reminder_time = EXCLUDED.reminder_time,
		    reminders_enabled = EXCLUDED.reminders_enabled,
		    channel = EXCLUDED.channel,
		    address = EXCLUDED.address,
		    updated_at = now(),
		    deactivated_at = NULL
		RETURNING created_at, updated_at;
    `

	p := u.Preferences
	err := r.db.QueryRowContext(
		ctx, query, u.ID, u.Username, p.Timezone, p.QuietHoursStart, p.QuietHoursEnd,
		p.ReminderTime, p.RemindersEnabled, p.Channel, p.Address,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	u.DeactivatedAt = nil
	return u, nil
}

const userColumns = `id, username, timezone, quiet_hours_start, quiet_hours_end,
		       reminder_time, reminders_enabled, channel, address,
		       created_at, updated_at, deactivated_at`

// GetUser retrieves a user by ID.
func (r *Repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;
    `

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// DeactivateUser soft-deactivates a user. Users are never deleted.
func (r *Repository) DeactivateUser(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE users
		SET deactivated_at = $2, updated_at = $2
		WHERE id = $1 AND deactivated_at IS NULL;
    `

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListActiveUsers returns users that currently want reminders.
func (r *Repository) ListActiveUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE deactivated_at IS NULL AND reminders_enabled
		ORDER BY id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

// CreatePlant inserts a new plant and returns its ID.
func (r *Repository) CreatePlant(ctx context.Context, p model.Plant) (uuid.UUID, error) {
	query := `
		INSERT INTO plants (
		    user_id, species, nickname, acquired_at, watering_interval,
		    feeding_interval, photo_ref, health_state
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, p.UserID, p.Species, p.Nickname, p.AcquiredAt.UTC(),
		nullDays(p.WateringInterval), nullDays(p.FeedingInterval), p.PhotoRef, string(p.HealthState),
	).Scan(&p.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create plant: %w", err)
	}

	return p.ID, nil
}

const plantColumns = `id, user_id, species, nickname, acquired_at, watering_interval,
		       feeding_interval, photo_ref, health_state, created_at, updated_at, archived_at`

// GetPlant retrieves a plant by ID, archived or not.
func (r *Repository) GetPlant(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM plants
		WHERE id = $1;
    `

	p, err := scanPlant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plant{}, ErrUnknownPlant
		}

		return model.Plant{}, fmt.Errorf("failed to get plant: %w", err)
	}

	return p, nil
}

// UpdateCareProfile replaces the care parameters of an active plant.
func (r *Repository) UpdateCareProfile(ctx context.Context, p model.Plant) error {
	query := `
		UPDATE plants
		SET species = $2, nickname = $3, watering_interval = $4, feeding_interval = $5,
		    photo_ref = $6, health_state = $7, updated_at = now()
		WHERE id = $1 AND archived_at IS NULL;
    `

	res, err := r.db.ExecContext(
		ctx, query, p.ID, p.Species, p.Nickname, nullDays(p.WateringInterval),
		nullDays(p.FeedingInterval), p.PhotoRef, string(p.HealthState),
	)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return r.missingReason(ctx, p.ID)
	}

	return nil
}

// ArchivePlant marks a plant as removed. Its log history is kept.
func (r *Repository) ArchivePlant(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE plants
		SET archived_at = $2, updated_at = $2
		WHERE id = $1 AND archived_at IS NULL;
    `

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to archive plant: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return r.missingReason(ctx, id)
	}

	return nil
}

// ListPlantsByUser returns a user's plants ordered by acquisition date.
func (r *Repository) ListPlantsByUser(ctx context.Context, userID int64, includeArchived bool) ([]model.Plant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM plants
		WHERE user_id = $1 AND ($2 OR archived_at IS NULL)
		ORDER BY acquired_at, id;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	var plants []model.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}

		plants = append(plants, p)
	}

	return plants, rows.Err()
}

// missingReason tells an unknown plant from an archived one after a guarded write
// touched no rows.
func (r *Repository) missingReason(ctx context.Context, id uuid.UUID) error {
	query := `
		SELECT archived_at
		FROM plants
		WHERE id = $1;
    `

	var archivedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&archivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownPlant
		}

		return fmt.Errorf("failed to check plant: %w", err)
	}

	if archivedAt.Valid {
		return ErrPlantArchived
	}

	return ErrUnknownPlant
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (model.User, error) {
	var (
		u           model.User
		deactivated sql.NullTime
	)

	err := s.Scan(
		&u.ID, &u.Username, &u.Preferences.Timezone, &u.Preferences.QuietHoursStart,
		&u.Preferences.QuietHoursEnd, &u.Preferences.ReminderTime, &u.Preferences.RemindersEnabled,
		&u.Preferences.Channel, &u.Preferences.Address, &u.CreatedAt, &u.UpdatedAt, &deactivated,
	)
	if err != nil {
		return model.User{}, err
	}

	if deactivated.Valid {
		t := deactivated.Time.UTC()
		u.DeactivatedAt = &t
	}

	return u, nil
}

func scanPlant(s scanner) (model.Plant, error) {
	var (
		p        model.Plant
		water    sql.NullInt64
		feed     sql.NullInt64
		state    string
		archived sql.NullTime
	)

	err := s.Scan(
		&p.ID, &p.UserID, &p.Species, &p.Nickname, &p.AcquiredAt, &water,
		&feed, &p.PhotoRef, &state, &p.CreatedAt, &p.UpdatedAt, &archived,
	)
	if err != nil {
		return model.Plant{}, err
	}

	p.AcquiredAt = p.AcquiredAt.UTC()
	p.HealthState = model.HealthState(state)
	if water.Valid {
		p.WateringInterval = model.Days(int(water.Int64))
	}
	if feed.Valid {
		p.FeedingInterval = model.Days(int(feed.Int64))
	}
	if archived.Valid {
		t := archived.Time.UTC()
		p.ArchivedAt = &t
	}

	return p, nil
}

func nullDays(d *int) sql.NullInt64 {
	if d == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*d), Valid: true}
}
