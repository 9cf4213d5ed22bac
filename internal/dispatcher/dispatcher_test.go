package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/plant-care/internal/mocks/notify"
	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/notify"
	"github.com/aliskhannn/plant-care/internal/repository/memory"
	"github.com/aliskhannn/plant-care/internal/schedule"
)

var day0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func day(n float64) time.Time {
	return day0.Add(time.Duration(n * float64(schedule.Day)))
}

type recordingChannel struct {
	mu      sync.Mutex
	batches []model.ReminderBatch
	err     error
}

func (c *recordingChannel) SendReminder(_ context.Context, batch model.ReminderBatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.batches = append(c.batches, batch)
	return c.err
}

func (c *recordingChannel) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.batches)
}

type fixture struct {
	db    *memory.DB
	plant model.Plant
}

func newFixture(t *testing.T, prefs model.Preferences, plants ...model.Plant) fixture {
	t.Helper()

	db := memory.New()
	ctx := context.Background()

	_, err := db.Plants().UpsertUser(ctx, model.User{ID: 42, Preferences: prefs})
	require.NoError(t, err)

	if len(plants) == 0 {
		plants = []model.Plant{{Species: "Ficus", AcquiredAt: day0, WateringInterval: model.Days(7)}}
	}

	var first model.Plant
	for i, p := range plants {
		p.UserID = 42
		p.ID, err = db.Plants().CreatePlant(ctx, p)
		require.NoError(t, err)
		if i == 0 {
			first = p
		}
	}

	return fixture{db: db, plant: first}
}

func utcPrefs() model.Preferences {
	return model.Preferences{Timezone: "UTC", RemindersEnabled: true, Channel: "telegram", Address: "100500"}
}

func testConfig() Config {
	return Config{
		PollInterval:  time.Minute,
		ExpiryWindow:  48 * time.Hour,
		MaxAttempts:   3,
		AttemptWindow: 24 * time.Hour,
		BatchSize:     50,
		Workers:       4,
	}
}

func (f fixture) dispatcher(ch notify.Channel) *Dispatcher {
	return New(f.db.Plants(), f.db.Events(), f.db.Deliveries(), ch, nil, schedule.NewCalculator(24*time.Hour), testConfig())
}

func (f fixture) latest(t *testing.T, kind model.ActionKind) *model.ReminderDelivery {
	t.Helper()

	rd, err := f.db.Deliveries().LatestFor(context.Background(), f.plant.ID, kind)
	require.NoError(t, err)
	return rd
}

func TestPoll_NothingDueBeforeInterval(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{}

	st, err := f.dispatcher(ch).Poll(context.Background(), day(6.9))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
	assert.Nil(t, f.latest(t, model.ActionWater))
}

func TestPoll_SevenDayPlantIsRemindedAndAcknowledged(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{}
	d := f.dispatcher(ch)
	ctx := context.Background()

	st, err := d.Poll(ctx, day(7))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Created)
	assert.Equal(t, 1, st.Sent)

	rd := f.latest(t, model.ActionWater)
	require.NotNil(t, rd)
	assert.Equal(t, day(7), rd.DueAt)
	assert.Equal(t, model.StatusSent, rd.Status)

	require.Len(t, ch.batches, 1)
	batch := ch.batches[0]
	assert.Equal(t, int64(42), batch.UserID)
	assert.Equal(t, day(7).Truncate(time.Minute), batch.Bucket)
	require.Len(t, batch.Items, 1)
	assert.Equal(t, rd.ID, batch.Items[0].DeliveryID)
	assert.Equal(t, 1, batch.Items[0].Attempt)
	assert.Equal(t, "Ficus", batch.Items[0].PlantName)

	// the user waters on day 7.5
	_, err = f.db.Events().Append(ctx, model.CareEvent{
		PlantID: f.plant.ID, Kind: model.ActionWater, Target: model.ActionWater, OccurredAt: day(7.5),
	})
	require.NoError(t, err)
	_, err = f.db.Deliveries().AcknowledgeOpen(ctx, f.plant.ID, model.ActionWater, day(7.5))
	require.NoError(t, err)

	st, err = d.Poll(ctx, day(8))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	tail, err := f.db.Events().Tail(ctx, f.plant.ID)
	require.NoError(t, err)
	due, err := schedule.NewCalculator(24*time.Hour).ComputeDue(f.plant, tail)
	require.NoError(t, err)
	assert.Equal(t, day(14.5), due.Water.DueAt)
}

func TestPoll_ExpiredReminderProducesSecondDelivery(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{}
	d := f.dispatcher(ch)
	ctx := context.Background()

	_, err := d.Poll(ctx, day(7))
	require.NoError(t, err)
	first := f.latest(t, model.ActionWater)

	st, err := d.Poll(ctx, day(8.9))
	require.NoError(t, err)
	assert.Equal(t, 0, st.Expired, "not yet 48 hours")

	st, err = d.Poll(ctx, day(9))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Expired)
	assert.Equal(t, 1, st.Created)
	assert.Equal(t, 0, st.Sent)

	expired, err := f.db.Deliveries().Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusExpired, expired.Status)

	second := f.latest(t, model.ActionWater)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, model.StatusPending, second.Status)
	assert.Equal(t, day(14), second.DueAt)

	st, err = d.Poll(ctx, day(14))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Sent)
	assert.Equal(t, 2, ch.calls())
}

func TestPoll_EscalatesAfterMaxFailedAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, utcPrefs())
	ch := mocks.NewMockChannel(ctrl)
	d := f.dispatcher(ch)
	ctx := context.Background()

	ch.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(errors.New("bad gateway")).Times(3)

	for i, at := range []time.Time{day(7), day(7).Add(time.Hour), day(7).Add(2 * time.Hour)} {
		st, err := d.Poll(ctx, at)
		require.NoError(t, err)
		assert.Equal(t, 1, st.Failed)

		rd := f.latest(t, model.ActionWater)
		if i < 2 {
			assert.Equal(t, model.StatusPending, rd.Status, "attempt %d must not escalate", i+1)
			assert.Equal(t, i+1, rd.Attempts)
			continue
		}

		assert.Equal(t, 1, st.Escalated)
		assert.Equal(t, model.StatusEscalated, rd.Status)
		assert.Equal(t, model.EscalationDeliveryFailed, rd.EscalationReason)
	}

	// escalated obligations are not retried
	st, err := d.Poll(ctx, day(7).Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestPoll_FailuresOutsideAttemptWindowRestartCount(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{err: notify.ErrChannelUnavailable}
	d := f.dispatcher(ch)
	ctx := context.Background()

	for _, at := range []time.Time{day(7), day(7).Add(time.Hour), day(8).Add(time.Minute)} {
		_, err := d.Poll(ctx, at)
		require.NoError(t, err)
	}

	rd := f.latest(t, model.ActionWater)
	assert.Equal(t, model.StatusPending, rd.Status)
	assert.Equal(t, 1, rd.Attempts)
	assert.Equal(t, day(8).Add(time.Minute), *rd.WindowStartedAt)

	ch.err = nil
	st, err := d.Poll(ctx, day(8).Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Sent)
}

func TestPoll_BatchesObligationsPerUser(t *testing.T) {
	f := newFixture(t, utcPrefs(),
		model.Plant{Species: "Ficus", AcquiredAt: day0, WateringInterval: model.Days(7), FeedingInterval: model.Days(7)},
		model.Plant{Species: "Fern", Nickname: "Fred", AcquiredAt: day0, WateringInterval: model.Days(7)},
	)
	ch := &recordingChannel{}

	st, err := f.dispatcher(ch).Poll(context.Background(), day(7))
	require.NoError(t, err)
	assert.Equal(t, 3, st.Created)
	assert.Equal(t, 3, st.Sent)

	require.Len(t, ch.batches, 1)
	assert.Len(t, ch.batches[0].Items, 3)
}

func TestPoll_QuietHoursDeferHandOff(t *testing.T) {
	prefs := utcPrefs()
	prefs.QuietHoursStart = "22:00"
	prefs.QuietHoursEnd = "08:00"

	acquired := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	f := newFixture(t, prefs, model.Plant{Species: "Ficus", AcquiredAt: acquired, WateringInterval: model.Days(1)})
	ch := &recordingChannel{}
	d := f.dispatcher(ch)

	st, err := d.Poll(context.Background(), acquired.Add(schedule.Day))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Created)
	assert.Equal(t, 1, st.Deferred)
	assert.Equal(t, 0, ch.calls())

	rd := f.latest(t, model.ActionWater)
	assert.Equal(t, 0, rd.Attempts, "deferral is not an attempt")

	st, err = d.Poll(context.Background(), time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Sent)
}

func TestPoll_SkipsUsersWithRemindersDisabled(t *testing.T) {
	prefs := utcPrefs()
	prefs.RemindersEnabled = false
	f := newFixture(t, prefs)
	ch := &recordingChannel{}

	st, err := f.dispatcher(ch).Poll(context.Background(), day(7))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
	assert.Equal(t, 0, ch.calls())
}

func TestPoll_ConcurrentCyclesCreateAndSendOnce(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.dispatcher(ch).Poll(ctx, day(7))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// re-running after a crash is a no-op as well
	_, err := f.dispatcher(ch).Poll(ctx, day(7))
	require.NoError(t, err)

	all, err := f.db.Deliveries().ListByUser(ctx, 42, day0, day(30))
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, ch.calls())
}

func TestPoll_InvalidScheduleIsSkipped(t *testing.T) {
	f := newFixture(t, utcPrefs(),
		model.Plant{Species: "Broken", AcquiredAt: day0, WateringInterval: model.Days(0)},
		model.Plant{Species: "Ficus", AcquiredAt: day0, WateringInterval: model.Days(7)},
	)
	ch := &recordingChannel{}

	st, err := f.dispatcher(ch).Poll(context.Background(), day(7))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Created)
	assert.Equal(t, 1, st.Sent)
}

func TestPoll_NextOccurrenceStartsWithoutSnoozes(t *testing.T) {
	f := newFixture(t, utcPrefs())
	ch := &recordingChannel{}
	d := f.dispatcher(ch)
	ctx := context.Background()

	snooze := func(rd *model.ReminderDelivery, at time.Time) {
		t.Helper()

		_, err := f.db.Events().Append(ctx, model.CareEvent{
			PlantID: f.plant.ID, Kind: model.ActionSnooze, Target: model.ActionWater, OccurredAt: at,
		})
		require.NoError(t, err)
		require.NoError(t, f.db.Deliveries().Transition(ctx, rd.ID, model.StatusSent, model.StatusSnoozed, "", at))
	}

	_, err := d.Poll(ctx, day(7))
	require.NoError(t, err)
	first := f.latest(t, model.ActionWater)
	assert.Equal(t, 0, first.SnoozeCount)
	snooze(first, day(7.5))

	_, err = d.Poll(ctx, day(8.5))
	require.NoError(t, err)
	second := f.latest(t, model.ActionWater)
	assert.Equal(t, 1, second.SnoozeCount)
	snooze(second, day(9))

	_, err = d.Poll(ctx, day(10))
	require.NoError(t, err)
	third := f.latest(t, model.ActionWater)
	assert.Equal(t, 2, third.SnoozeCount)
	assert.Equal(t, model.StatusSent, third.Status)

	// the third reminder goes unanswered
	st, err := d.Poll(ctx, day(12))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Expired)
	assert.Equal(t, 1, st.Created)

	next := f.latest(t, model.ActionWater)
	assert.Equal(t, day(14), next.DueAt)
	assert.Equal(t, 0, next.SnoozeCount)

	_, err = d.Poll(ctx, day(14))
	require.NoError(t, err)
	snooze(f.latest(t, model.ActionWater), day(14.5))

	_, err = d.Poll(ctx, day(15.5))
	require.NoError(t, err)
	assert.Equal(t, 1, f.latest(t, model.ActionWater).SnoozeCount)
}

func TestCarriedSnoozes(t *testing.T) {
	e := model.ScheduleEntry{Kind: model.ActionWater, Anchor: day(0), SnoozeCount: 2}

	assert.Equal(t, 2, carriedSnoozes(e, model.ReminderDelivery{DueAt: day(7), Status: model.StatusSnoozed, SnoozeCount: 1}, 2))
	assert.Equal(t, 0, carriedSnoozes(e, model.ReminderDelivery{DueAt: day(10), Status: model.StatusExpired, SnoozeCount: 2}, 2))
	assert.Equal(t, 2, carriedSnoozes(e, model.ReminderDelivery{DueAt: day(7), Status: model.StatusAcknowledged}, 2))

	fresh := model.ScheduleEntry{Kind: model.ActionWater, Anchor: day(11)}
	assert.Equal(t, 0, carriedSnoozes(fresh, model.ReminderDelivery{DueAt: day(10), Status: model.StatusSnoozed, SnoozeCount: 2}, 0))
}
