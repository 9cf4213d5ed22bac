package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/plant-care/internal/analytics"
	"github.com/aliskhannn/plant-care/internal/cache"
	"github.com/aliskhannn/plant-care/internal/config"
	"github.com/aliskhannn/plant-care/internal/dispatcher"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/notify"
	"github.com/aliskhannn/plant-care/internal/rabbitmq/queue"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/repository/event"
	"github.com/aliskhannn/plant-care/internal/repository/memory"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/schedule"
	"github.com/aliskhannn/plant-care/internal/service/care"
	"github.com/aliskhannn/plant-care/pkg/email"
	"github.com/aliskhannn/plant-care/pkg/telegram"
)

type plantStore interface {
	UpsertUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	DeactivateUser(ctx context.Context, id int64, at time.Time) error
	ListActiveUsers(ctx context.Context) ([]model.User, error)
	CreatePlant(ctx context.Context, p model.Plant) (uuid.UUID, error)
	GetPlant(ctx context.Context, id uuid.UUID) (model.Plant, error)
	UpdateCareProfile(ctx context.Context, p model.Plant) error
	ArchivePlant(ctx context.Context, id uuid.UUID, at time.Time) error
	ListPlantsByUser(ctx context.Context, userID int64, includeArchived bool) ([]model.Plant, error)
}

type eventStore interface {
	Append(ctx context.Context, e model.CareEvent) (model.CareEvent, error)
	Tail(ctx context.Context, plantID uuid.UUID) (model.EventTail, error)
	ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.CareEvent, error)
}

type deliveryStore interface {
	Create(ctx context.Context, d model.ReminderDelivery) (model.ReminderDelivery, error)
	Get(ctx context.Context, id uuid.UUID) (model.ReminderDelivery, error)
	LatestFor(ctx context.Context, plantID uuid.UUID, kind model.ActionKind) (*model.ReminderDelivery, error)
	ListPendingByUser(ctx context.Context, userID int64) ([]model.ReminderDelivery, error)
	ListByUser(ctx context.Context, userID int64, from, to time.Time) ([]model.ReminderDelivery, error)
	ClaimAttempt(ctx context.Context, id uuid.UUID, seen, attempt int, windowStart, at time.Time) error
	MarkSent(ctx context.Context, id uuid.UUID, attempt int, at time.Time) error
	Transition(ctx context.Context, id uuid.UUID, from, to model.DeliveryStatus, reason string, at time.Time) error
	AcknowledgeOpen(ctx context.Context, plantID uuid.UUID, kind model.ActionKind, at time.Time) ([]uuid.UUID, error)
	CancelOpen(ctx context.Context, plantID uuid.UUID, at time.Time) ([]uuid.UUID, error)
	ExpireSent(ctx context.Context, sentBefore, at time.Time) ([]uuid.UUID, error)
}

// app holds everything the commands share. close releases the connections in
// reverse order of opening.
type app struct {
	cfg *config.Config

	db         *dbpg.DB
	plants     plantStore
	events     eventStore
	deliveries deliveryStore

	cache  *cache.StatusCache
	direct *notify.Direct
	queue  *queue.ReminderQueue

	care       *care.Service
	analytics  *analytics.Service
	dispatcher *dispatcher.Dispatcher

	closers []func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	if err := a.openStorage(); err != nil {
		a.close()
		return nil, err
	}

	if err := a.openCache(ctx); err != nil {
		a.close()
		return nil, err
	}

	if err := a.openChannel(); err != nil {
		a.close()
		return nil, err
	}

	sc := cfg.Schedule
	calc := schedule.NewCalculator(sc.SnoozeDuration)

	a.care = care.NewService(a.plants, a.events, a.deliveries, a.cache, calc, care.Config{
		MaxSnoozes:   sc.MaxSnoozes,
		ExpiryWindow: sc.ExpiryWindow,
	}, cfg.Retry)

	a.analytics = analytics.NewService(a.plants, a.events, a.deliveries)

	var channel notify.Channel = a.direct
	if a.queue != nil {
		channel = a.queue
	}

	a.dispatcher = dispatcher.New(a.plants, a.events, a.deliveries, channel, a.cache, calc, dispatcher.Config{
		PollInterval:  sc.PollInterval,
		ExpiryWindow:  sc.ExpiryWindow,
		MaxAttempts:   sc.MaxAttempts,
		AttemptWindow: sc.AttemptWindow,
		BatchSize:     sc.BatchSize,
		Workers:       sc.Workers,
	})

	return a, nil
}

func (a *app) openStorage() error {
	if a.cfg.Storage.Driver == config.StorageMemory {
		zlog.Logger.Warn().Msg("using in-memory storage, data is lost on exit")

		db := memory.New()
		a.plants, a.events, a.deliveries = db.Plants(), db.Events(), db.Deliveries()
		return nil
	}

	dbc := a.cfg.Database

	opts := &dbpg.Options{
		MaxOpenConns:    dbc.MaxOpenConns,
		MaxIdleConns:    dbc.MaxIdleConns,
		ConnMaxLifetime: dbc.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(dbc.Slaves))
	for _, s := range dbc.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(dbc.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.db = db
	a.closers = append(a.closers, func() {
		if err := db.Master.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close master DB")
		}

		for i, s := range db.Slaves {
			if err := s.Close(); err != nil {
				zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
			}
		}
	})

	a.plants = plant.NewRepository(db)
	a.events = event.NewRepository(db)
	a.deliveries = delivery.NewRepository(db)

	return nil
}

func (a *app) openCache(ctx context.Context) error {
	rc := a.cfg.Redis
	if rc.Address == "" {
		zlog.Logger.Info().Msg("redis address not set, status cache disabled")
		return nil
	}

	dbNum, err := strconv.Atoi(rc.Database)
	if err != nil {
		return fmt.Errorf("failed to parse redis database: %w", err)
	}

	rdb := redis.New(rc.Address, rc.Password, dbNum)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.closers = append(a.closers, func() {
		if err := rdb.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	})

	a.cache = cache.NewStatusCache(rdb, a.cfg.Retry)
	return nil
}

func (a *app) openChannel() error {
	senders := make(map[string]notify.Sender)

	if tc := a.cfg.Telegram; tc.Token != "" {
		senders["telegram"] = telegram.NewClient(tc.Token, a.cfg.Schedule.SendTimeout)
	}

	if ec := a.cfg.Email; ec.SMTPHost != "" {
		port, err := strconv.Atoi(ec.SMTPPort)
		if err != nil {
			return fmt.Errorf("failed to parse email smtp port: %w", err)
		}

		senders["email"] = email.NewClient(ec.SMTPHost, port, ec.Username, ec.Password, ec.From, a.cfg.Schedule.SendTimeout)
	}

	if len(senders) == 0 {
		zlog.Logger.Warn().Msg("no notification senders configured")
	}

	a.direct = notify.NewDirect(senders, a.cfg.Schedule.SendTimeout, a.cfg.Retry)

	if a.cfg.Dispatch.Mode != config.DispatchQueue {
		return nil
	}

	rc := a.cfg.RabbitMQ

	conn, err := rabbitmq.Connect(rc.URL(), rc.Retries, rc.Pause)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	a.closers = append(a.closers, func() {
		if err := ch.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
		}

		if err := conn.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
		}
	})

	q, err := queue.NewReminderQueue(ch, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to create reminder queue: %w", err)
	}

	a.queue = q
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
