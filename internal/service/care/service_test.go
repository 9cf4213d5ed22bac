package care

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/plant-care/internal/mocks/service/care"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/delivery"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type mockSet struct {
	plants     *mocks.MockplantRepository
	events     *mocks.MockeventRepository
	deliveries *mocks.MockdeliveryRepository
}

func newService(t *testing.T) (*Service, mockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mockSet{
		plants:     mocks.NewMockplantRepository(ctrl),
		events:     mocks.NewMockeventRepository(ctrl),
		deliveries: mocks.NewMockdeliveryRepository(ctrl),
	}

	svc := NewService(
		m.plants, m.events, m.deliveries, nil,
		schedule.NewCalculator(24*time.Hour),
		Config{MaxSnoozes: 2, ExpiryWindow: 48 * time.Hour},
		retry.Strategy{Attempts: 3, Delay: time.Millisecond},
	).WithClock(func() time.Time { return now })

	return svc, m
}

func TestService_RegisterPlant(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.plants.EXPECT().GetUser(gomock.Any(), int64(7)).Return(model.User{}, plant.ErrUserNotFound)
	m.plants.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u model.User) (model.User, error) {
			assert.Equal(t, model.DefaultPreferences(), u.Preferences)
			return u, nil
		},
	)
	m.plants.EXPECT().CreatePlant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p model.Plant) (uuid.UUID, error) {
			assert.Equal(t, now, p.AcquiredAt)
			assert.Equal(t, 3, *p.WateringInterval)
			return id, nil
		},
	)

	p, err := svc.RegisterPlant(context.Background(), Registration{
		UserID:           7,
		Species:          "Orchid",
		WateringInterval: model.Days(5),
		HealthState:      model.StateFlowering,
	})
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
}

func TestService_RegisterPlant_InvalidInterval(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.RegisterPlant(context.Background(), Registration{
		UserID:           7,
		Species:          "Orchid",
		WateringInterval: model.Days(0),
		HealthState:      model.StateDormancy,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidScheduleConfig)
}

func TestService_UpdateCareProfile_Archived(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	archived := now.Add(-time.Hour)
	m.plants.EXPECT().GetPlant(gomock.Any(), id).Return(model.Plant{ID: id, ArchivedAt: &archived}, nil)

	_, err := svc.UpdateCareProfile(context.Background(), id, CareProfile{Species: "Fern", WateringInterval: model.Days(3)})
	assert.ErrorIs(t, err, plant.ErrPlantArchived)
}

func TestService_RecordCareAction(t *testing.T) {
	plantID := uuid.New()

	t.Run("water acknowledges open reminders", func(t *testing.T) {
		svc, m := newService(t)

		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e model.CareEvent) (model.CareEvent, error) {
				assert.Equal(t, model.ActionWater, e.Target)
				assert.Equal(t, now, e.OccurredAt)
				e.ID = uuid.New()
				return e, nil
			},
		)
		m.events.EXPECT().Tail(gomock.Any(), plantID).DoAndReturn(
			func(_ context.Context, _ uuid.UUID) (model.EventTail, error) {
				tail := model.NewEventTail()
				tail.Last[model.ActionWater] = &model.CareEvent{PlantID: plantID, Kind: model.ActionWater, OccurredAt: now, Seq: 1}
				return tail, nil
			},
		)
		m.deliveries.EXPECT().AcknowledgeOpen(gomock.Any(), plantID, model.ActionWater, now).Return([]uuid.UUID{uuid.New()}, nil)

		e, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionWater})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
	})

	t.Run("backdated water keeps open reminders", func(t *testing.T) {
		svc, m := newService(t)

		backdated := now.Add(-72 * time.Hour)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e model.CareEvent) (model.CareEvent, error) {
				assert.Equal(t, backdated, e.OccurredAt)
				e.ID = uuid.New()
				e.Seq = 2
				return e, nil
			},
		)
		tail := model.NewEventTail()
		tail.Last[model.ActionWater] = &model.CareEvent{PlantID: plantID, Kind: model.ActionWater, OccurredAt: now.Add(-24 * time.Hour), Seq: 1}
		m.events.EXPECT().Tail(gomock.Any(), plantID).Return(tail, nil)
		m.deliveries.EXPECT().AcknowledgeOpen(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionWater, OccurredAt: backdated})
		require.NoError(t, err)
	})

	t.Run("unreadable tail still acknowledges", func(t *testing.T) {
		svc, m := newService(t)

		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e model.CareEvent) (model.CareEvent, error) { return e, nil },
		)
		m.events.EXPECT().Tail(gomock.Any(), plantID).Return(model.EventTail{}, errors.New("connection reset"))
		m.deliveries.EXPECT().AcknowledgeOpen(gomock.Any(), plantID, model.ActionFeed, now).Return(nil, nil)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionFeed})
		require.NoError(t, err)
	})

	t.Run("skip needs a care target", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionSkip})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("water cannot target feed", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionWater, Target: model.ActionFeed})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("archived plant is not retried", func(t *testing.T) {
		svc, m := newService(t)

		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(model.CareEvent{}, plant.ErrPlantArchived).Times(1)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionSkip, Target: model.ActionWater})
		assert.ErrorIs(t, err, plant.ErrPlantArchived)
	})

	t.Run("storage failure is retried", func(t *testing.T) {
		svc, m := newService(t)

		dbErr := errors.New("connection reset")
		gomock.InOrder(
			m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(model.CareEvent{}, dbErr),
			m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e model.CareEvent) (model.CareEvent, error) { return e, nil },
			),
		)

		_, err := svc.RecordCareAction(context.Background(), Action{PlantID: plantID, Kind: model.ActionSnooze, Target: model.ActionFeed})
		assert.NoError(t, err)
	})
}

func TestService_AcknowledgeReminder(t *testing.T) {
	id := uuid.New()
	plantID := uuid.New()
	sentAt := now.Add(-time.Hour)

	t.Run("sent reminder", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{
			ID: id, PlantID: plantID, Kind: model.ActionFeed, Status: model.StatusSent, SentAt: &sentAt,
		}, nil)
		gomock.InOrder(
			m.events.EXPECT().Append(gomock.Any(), model.CareEvent{
				PlantID: plantID, Kind: model.ActionFeed, Target: model.ActionFeed, OccurredAt: now,
			}).DoAndReturn(func(_ context.Context, e model.CareEvent) (model.CareEvent, error) { return e, nil }),
			m.deliveries.EXPECT().Transition(gomock.Any(), id, model.StatusSent, model.StatusAcknowledged, "", now).Return(nil),
		)

		e, err := svc.AcknowledgeReminder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, model.ActionFeed, e.Kind)
	})

	t.Run("already acknowledged", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusAcknowledged}, nil)

		_, err := svc.AcknowledgeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotActionable)
	})

	t.Run("expired", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusExpired}, nil)

		_, err := svc.AcknowledgeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrExpiredDelivery)
	})

	t.Run("sent past the expiry window", func(t *testing.T) {
		svc, m := newService(t)

		old := now.Add(-48 * time.Hour)
		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusSent, SentAt: &old}, nil)
		m.deliveries.EXPECT().Transition(gomock.Any(), id, model.StatusSent, model.StatusExpired, "", now).Return(nil)

		_, err := svc.AcknowledgeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrExpiredDelivery)
	})

	t.Run("log failure leaves the reminder open", func(t *testing.T) {
		svc, m := newService(t)

		dbErr := errors.New("connection refused")
		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{
			ID: id, PlantID: plantID, Kind: model.ActionWater, Status: model.StatusSent, SentAt: &sentAt,
		}, nil)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(model.CareEvent{}, dbErr).MinTimes(1)
		m.deliveries.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AcknowledgeReminder(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "append care event")
	})

	t.Run("lost race", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusPending}, nil)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e model.CareEvent) (model.CareEvent, error) { return e, nil },
		)
		m.deliveries.EXPECT().Transition(gomock.Any(), id, model.StatusPending, model.StatusAcknowledged, "", now).Return(delivery.ErrStaleTransition)

		_, err := svc.AcknowledgeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotActionable)
	})
}

func TestService_SnoozeReminder(t *testing.T) {
	id := uuid.New()
	plantID := uuid.New()
	sentAt := now.Add(-time.Hour)

	t.Run("within limit", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{
			ID: id, PlantID: plantID, Kind: model.ActionWater, Status: model.StatusSent, SentAt: &sentAt, SnoozeCount: 1,
		}, nil)
		m.events.EXPECT().Append(gomock.Any(), model.CareEvent{
			PlantID: plantID, Kind: model.ActionSnooze, Target: model.ActionWater, OccurredAt: now,
		}).DoAndReturn(func(_ context.Context, e model.CareEvent) (model.CareEvent, error) { return e, nil })
		m.deliveries.EXPECT().Transition(gomock.Any(), id, model.StatusSent, model.StatusSnoozed, "", now).Return(nil)

		res, err := svc.SnoozeReminder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSnoozed, res.Delivery.Status)
		assert.Equal(t, now.Add(24*time.Hour), res.RemindAt)
	})

	t.Run("limit reached escalates", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{
			ID: id, PlantID: plantID, Kind: model.ActionWater, Status: model.StatusSent, SentAt: &sentAt, SnoozeCount: 2,
		}, nil)
		m.deliveries.EXPECT().Transition(gomock.Any(), id, model.StatusSent, model.StatusEscalated, model.EscalationSnoozeLimit, now).Return(nil)

		_, err := svc.SnoozeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrSnoozeLimitReached)
	})

	t.Run("pending reminder cannot be snoozed", func(t *testing.T) {
		svc, m := newService(t)

		m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusPending}, nil)

		_, err := svc.SnoozeReminder(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotActionable)
	})
}

func TestService_ArchivePlant(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.plants.EXPECT().ArchivePlant(gomock.Any(), id, now).Return(nil)
	m.deliveries.EXPECT().CancelOpen(gomock.Any(), id, now).Return([]uuid.UUID{uuid.New()}, nil)

	assert.NoError(t, svc.ArchivePlant(context.Background(), id))
}

func TestService_PlantView_MarksEscalatedKindsOverdue(t *testing.T) {
	svc, m := newService(t)

	p := model.Plant{ID: uuid.New(), AcquiredAt: now, WateringInterval: model.Days(4), FeedingInterval: model.Days(14)}
	m.plants.EXPECT().GetPlant(gomock.Any(), p.ID).Return(p, nil)
	m.events.EXPECT().Tail(gomock.Any(), p.ID).Return(model.NewEventTail(), nil)
	m.deliveries.EXPECT().LatestFor(gomock.Any(), p.ID, model.ActionWater).Return(&model.ReminderDelivery{Status: model.StatusEscalated}, nil)
	m.deliveries.EXPECT().LatestFor(gomock.Any(), p.ID, model.ActionFeed).Return(nil, nil)

	v, err := svc.PlantView(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, v.Due.Water)
	assert.Equal(t, now.Add(4*schedule.Day), v.Due.Water.DueAt)
	assert.True(t, v.Overdue[model.ActionWater])
	assert.False(t, v.Overdue[model.ActionFeed])
}

func TestService_UpsertUser_Validation(t *testing.T) {
	svc, m := newService(t)

	_, err := svc.UpsertUser(context.Background(), model.User{ID: 1, Preferences: model.Preferences{Timezone: "Mars/Olympus"}})
	assert.ErrorIs(t, err, ErrInvalidPreferences)

	_, err = svc.UpsertUser(context.Background(), model.User{ID: 1, Preferences: model.Preferences{QuietHoursStart: "23:00"}})
	assert.ErrorIs(t, err, ErrInvalidPreferences)

	m.plants.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u model.User) (model.User, error) { return u, nil },
	)
	u, err := svc.UpsertUser(context.Background(), model.User{ID: 1, Preferences: model.Preferences{QuietHoursStart: "23:00", QuietHoursEnd: "08:00"}})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTimezone, u.Preferences.Timezone)
	assert.Equal(t, "telegram", u.Preferences.Channel)
}

func TestService_GetDeliveryStatus_WithoutCache(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.deliveries.EXPECT().Get(gomock.Any(), id).Return(model.ReminderDelivery{ID: id, Status: model.StatusSnoozed}, nil)

	status, err := svc.GetDeliveryStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSnoozed, status)
}
