// Package dispatcher runs the reminder poll cycle.
//
// A cycle expires unanswered reminders, creates deliveries for obligations that
// became due, and hands pending deliveries to the notification channel in
// per-user batches. All state lives in the store, so a cycle can be re-run or
// run concurrently with another process: creation is guarded by the unique
// (plant, kind, due) triple and every transition is a compare-and-set.
package dispatcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/plant-care/internal/cache"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/notify"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher/mock.go -package=mocks
type plantStore interface {
	ListActiveUsers(ctx context.Context) ([]model.User, error)
	ListPlantsByUser(ctx context.Context, userID int64, includeArchived bool) ([]model.Plant, error)
}

type eventLog interface {
	Tail(ctx context.Context, plantID uuid.UUID) (model.EventTail, error)
}

type deliveryStore interface {
	Create(ctx context.Context, d model.ReminderDelivery) (model.ReminderDelivery, error)
	LatestFor(ctx context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.ReminderDelivery, error)
	ListPendingByUser(ctx context.Context, userID int64) ([]model.ReminderDelivery, error)
	ClaimAttempt(ctx context.Context, id uuid.UUID, seen, attempt int, windowStart, at time.Time) error
	MarkSent(ctx context.Context, id uuid.UUID, attempt int, at time.Time) error
	Transition(ctx context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error
	ExpireSent(ctx context.Context, sentBefore, at time.Time) ([]uuid.UUID, error)
}

// Config holds the dispatcher tunables.
type Config struct {
	PollInterval  time.Duration // cycle period and batching bucket width
	ExpiryWindow  time.Duration // SENT without response for this long becomes EXPIRED
	MaxAttempts   int           // failed hand-offs within AttemptWindow before escalation
	AttemptWindow time.Duration
	BatchSize     int // max items in one outbound message
	Workers       int // users processed in parallel
}

// Stats summarises one poll cycle.
type Stats struct {
	Expired   int
	Created   int
	Sent      int
	Failed    int
	Escalated int
	Deferred  int
}

func (s *Stats) add(o Stats) {
	s.Expired += o.Expired
	s.Created += o.Created
	s.Sent += o.Sent
	s.Failed += o.Failed
	s.Escalated += o.Escalated
	s.Deferred += o.Deferred
}

// Dispatcher drives reminder deliveries.
type Dispatcher struct {
	plants     plantStore
	events     eventLog
	deliveries deliveryStore
	channel    notify.Channel
	cache      *cache.StatusCache
	calc       *schedule.Calculator
	cfg        Config
	log        zerolog.Logger
}

// New creates a Dispatcher. cache may be nil.
func New(
	plants plantStore,
	events eventLog,
	deliveries deliveryStore,
	channel notify.Channel,
	cache *cache.StatusCache,
	calc *schedule.Calculator,
	cfg Config,
) *Dispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return &Dispatcher{
		plants:     plants,
		events:     events,
		deliveries: deliveries,
		channel:    channel,
		cache:      cache,
		calc:       calc,
		cfg:        cfg,
		log:        zlog.Logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Run polls on every tick until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info().Dur("interval", d.cfg.PollInterval).Int("workers", d.cfg.Workers).Msg("dispatcher starting")

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("dispatcher stopping")
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.Poll(ctx, time.Now().UTC()); err != nil && !errors.Is(err, context.Canceled) {
				d.log.Error().Err(err).Msg("poll cycle failed")
			}
		}
	}
}

// Poll runs one cycle as of now. Failures of a single user are logged and do
// not stop the others.
func (d *Dispatcher) Poll(ctx context.Context, now time.Time) (Stats, error) {
	now = now.UTC()

	var total Stats

	expired, err := d.deliveries.ExpireSent(ctx, now.Add(-d.cfg.ExpiryWindow), now)
	if err != nil {
		return total, err
	}
	total.Expired = len(expired)
	d.cache.SetMany(ctx, expired, model.StatusExpired)

	users, err := d.plants.ListActiveUsers(ctx)
	if err != nil {
		return total, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)

	for _, u := range users {
		u := u
		g.Go(func() error {
			st, err := d.pollUser(gctx, u, now)

			mu.Lock()
			total.add(st)
			mu.Unlock()

			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				d.log.Error().Err(err).Int64("user_id", u.ID).Msg("failed to process user")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, err
	}

	if total != (Stats{}) {
		d.log.Info().
			Int("expired", total.Expired).
			Int("created", total.Created).
			Int("sent", total.Sent).
			Int("failed", total.Failed).
			Int("escalated", total.Escalated).
			Int("deferred", total.Deferred).
			Msg("poll cycle done")
	}

	return total, nil
}

func (d *Dispatcher) pollUser(ctx context.Context, u model.User, now time.Time) (Stats, error) {
	var st Stats

	plants, err := d.plants.ListPlantsByUser(ctx, u.ID, false)
	if err != nil {
		return st, err
	}

	names := make(map[uuid.UUID]string, len(plants))
	for _, p := range plants {
		names[p.ID] = plantName(p)

		created, err := d.schedulePlant(ctx, p, now)
		if err != nil {
			return st, err
		}
		st.Created += created
	}

	pending, err := d.deliveries.ListPendingByUser(ctx, u.ID)
	if err != nil {
		return st, err
	}

	var ready []model.ReminderDelivery
	for _, rd := range pending {
		if _, ok := names[rd.PlantID]; !ok {
			continue
		}
		if rd.DueAt.After(now) {
			continue
		}
		// attempted by this or a concurrent cycle less than a poll ago
		if rd.LastAttemptAt != nil && now.Sub(*rd.LastAttemptAt) < d.cfg.PollInterval {
			continue
		}
		if schedule.ReleaseTime(rd.DueAt, u.Preferences).After(now) {
			st.Deferred++
			continue
		}
		ready = append(ready, rd)
	}

	for start := 0; start < len(ready); start += d.cfg.BatchSize {
		end := start + d.cfg.BatchSize
		if end > len(ready) {
			end = len(ready)
		}

		st.add(d.handOff(ctx, u, ready[start:end], names, now))
	}

	return st, nil
}

func plantName(p model.Plant) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species
}
