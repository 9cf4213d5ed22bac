package event

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/plant-care/internal/model"
	"github.com/aliskhannn/plant-care/internal/repository/plant"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var eventRowColumns = []string{
	"id", "seq", "plant_id", "kind", "target", "occurred_at", "note", "photo_ref", "created_at",
}

func TestAppend(t *testing.T) {
	repo, mock := setupMockDB(t)

	plantID := uuid.New()
	eventID := uuid.New()
	occurred := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	e := model.CareEvent{PlantID: plantID, Kind: model.ActionWater, Target: model.ActionWater, OccurredAt: occurred}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO care_events`)).
		WithArgs(plantID, "water", "water", occurred, "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "seq", "created_at"}).AddRow(eventID, int64(12), occurred))

	got, err := repo.Append(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, eventID, got.ID)
	assert.Equal(t, int64(12), got.Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_Rejected(t *testing.T) {
	repo, mock := setupMockDB(t)

	plantID := uuid.New()
	e := model.CareEvent{PlantID: plantID, Kind: model.ActionFeed, Target: model.ActionFeed, OccurredAt: time.Now().UTC()}

	t.Run("archived plant", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO care_events`)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT archived_at IS NOT NULL`)).
			WithArgs(plantID).
			WillReturnRows(sqlmock.NewRows([]string{"archived"}).AddRow(true))

		_, err := repo.Append(context.Background(), e)
		assert.ErrorIs(t, err, plant.ErrPlantArchived)
	})

	t.Run("unknown plant", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO care_events`)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT archived_at IS NOT NULL`)).
			WithArgs(plantID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Append(context.Background(), e)
		assert.ErrorIs(t, err, plant.ErrUnknownPlant)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatest_None(t *testing.T) {
	repo, mock := setupMockDB(t)

	plantID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY e.occurred_at DESC, e.seq DESC`)).
		WithArgs(plantID, "water").
		WillReturnError(sql.ErrNoRows)

	e, err := repo.Latest(context.Background(), plantID, model.ActionWater)
	require.NoError(t, err)
	assert.Nil(t, e)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTail(t *testing.T) {
	repo, mock := setupMockDB(t)

	plantID := uuid.New()
	watered := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	snoozed := watered.Add(7 * 24 * time.Hour)

	// water: one event and one snooze after it
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY e.occurred_at DESC, e.seq DESC`)).
		WithArgs(plantID, "water").
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(uuid.New(), int64(3), plantID, "water", "water", watered, "", "", watered))
	mock.ExpectQuery(regexp.QuoteMeta(`AND (e.occurred_at, e.seq) > ($3, $4)`)).
		WithArgs(plantID, "water", watered, int64(3)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(uuid.New(), int64(4), plantID, "snooze", "water", snoozed, "", "", snoozed))

	// feed: never fed, no snoozes
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY e.occurred_at DESC, e.seq DESC`)).
		WithArgs(plantID, "feed").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`AND (e.occurred_at, e.seq) > ($3, $4)`)).
		WithArgs(plantID, "feed", time.Time{}, int64(0)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	tail, err := repo.Tail(context.Background(), plantID)
	require.NoError(t, err)

	require.NotNil(t, tail.Last[model.ActionWater])
	assert.Equal(t, watered, tail.Last[model.ActionWater].OccurredAt)
	require.Len(t, tail.Snoozes[model.ActionWater], 1)
	assert.Equal(t, model.ActionSnooze, tail.Snoozes[model.ActionWater][0].Kind)

	assert.Nil(t, tail.Last[model.ActionFeed])
	assert.Empty(t, tail.Snoozes[model.ActionFeed])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	plantID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN plants p ON p.id = e.plant_id`)).
		WithArgs(int64(42), from, to).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(uuid.New(), int64(1), plantID, "water", "water", from.Add(time.Hour), "", "", from).
			AddRow(uuid.New(), int64(2), plantID, "feed", "feed", from.Add(2*time.Hour), "first feed", "", from))

	events, err := repo.ListByUser(context.Background(), 42, from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.ActionFeed, events[1].Kind)
	assert.Equal(t, "first feed", events[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}
