package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
)

// Plants is the in-memory care profile store.
type Plants struct {
	db *DB
}

func (p *Plants) UpsertUser(_ context.Context, u model.User) (model.User, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	now := p.db.now()
	if existing, ok := p.db.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	u.DeactivatedAt = nil

	p.db.users[u.ID] = u
	return u, nil
}

func (p *Plants) GetUser(_ context.Context, id int64) (model.User, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	u, ok := p.db.users[id]
	if !ok {
		return model.User{}, plant.ErrUserNotFound
	}
	return u, nil
}

func (p *Plants) DeactivateUser(_ context.Context, id int64, at time.Time) error {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	u, ok := p.db.users[id]
	if !ok || u.DeactivatedAt != nil {
		return plant.ErrUserNotFound
	}

	u.DeactivatedAt = ptr(at)
	u.UpdatedAt = at.UTC()
	p.db.users[id] = u
	return nil
}

func (p *Plants) ListActiveUsers(_ context.Context) ([]model.User, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	var users []model.User
	for _, u := range p.db.users {
		if u.Active() && u.Preferences.RemindersEnabled {
			users = append(users, u)
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (p *Plants) CreatePlant(_ context.Context, pl model.Plant) (uuid.UUID, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	if _, ok := p.db.users[pl.UserID]; !ok {
		return uuid.Nil, plant.ErrUserNotFound
	}

	now := p.db.now()
	pl.ID = uuid.New()
	pl.AcquiredAt = pl.AcquiredAt.UTC()
	pl.CreatedAt = now
	pl.UpdatedAt = now
	pl.ArchivedAt = nil

	p.db.plants[pl.ID] = pl
	return pl.ID, nil
}

func (p *Plants) GetPlant(_ context.Context, id uuid.UUID) (model.Plant, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	pl, ok := p.db.plants[id]
	if !ok {
		return model.Plant{}, plant.ErrUnknownPlant
	}
	return pl, nil
}

func (p *Plants) UpdateCareProfile(_ context.Context, upd model.Plant) error {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	pl, err := p.db.activePlant(upd.ID)
	if err != nil {
		return err
	}

	pl.Species = upd.Species
	pl.Nickname = upd.Nickname
	pl.WateringInterval = upd.WateringInterval
	pl.FeedingInterval = upd.FeedingInterval
	pl.PhotoRef = upd.PhotoRef
	pl.HealthState = upd.HealthState
	pl.UpdatedAt = p.db.now()

	p.db.plants[pl.ID] = pl
	return nil
}

func (p *Plants) ArchivePlant(_ context.Context, id uuid.UUID, at time.Time) error {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	pl, err := p.db.activePlant(id)
	if err != nil {
		return err
	}

	pl.ArchivedAt = ptr(at)
	pl.UpdatedAt = at.UTC()
	p.db.plants[id] = pl
	return nil
}

func (p *Plants) ListPlantsByUser(_ context.Context, userID int64, includeArchived bool) ([]model.Plant, error) {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	var plants []model.Plant
	for _, pl := range p.db.plants {
		if pl.UserID != userID || (pl.Archived() && !includeArchived) {
			continue
		}
		plants = append(plants, pl)
	}

	sort.Slice(plants, func(i, j int) bool {
		if !plants[i].AcquiredAt.Equal(plants[j].AcquiredAt) {
			return plants[i].AcquiredAt.Before(plants[j].AcquiredAt)
		}
		return plants[i].ID.String() < plants[j].ID.String()
	})
	return plants, nil
}

// activePlant must be called with the lock held.
func (db *DB) activePlant(id uuid.UUID) (model.Plant, error) {
	pl, ok := db.plants[id]
	if !ok {
		return model.Plant{}, plant.ErrUnknownPlant
	}
	if pl.Archived() {
		return model.Plant{}, plant.ErrPlantArchived
	}
	return pl, nil
}
