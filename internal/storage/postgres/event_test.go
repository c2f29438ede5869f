package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vue-production/internal/storage"
)

func TestStorage_SaveEvent(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	batchID := createTestOrder(t, defaultOrderFixture())

	responsible := "FMNTC"
	comments := "заклинило шпиндель"

	eventID, err := testStorage.SaveEvent(ctx, storage.EventDetails{
		Name:        "Поломка станка",
		BatchID:     batchID,
		StartTime:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
		TimeGroup:   storage.TimeGroupBreakdown,
		Responsible: &responsible,
		Comments:    &comments,
	})
	require.NoError(t, err)
	assert.Greater(t, eventID, int64(0))

	events, err := testStorage.ListEvents(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, eventID, events[0].ID)
	assert.Equal(t, "Поломка станка", events[0].Name)
	assert.Equal(t, storage.TimeGroupBreakdown, events[0].TimeGroup)
	require.NotNil(t, events[0].Responsible)
	assert.Equal(t, "FMNTC", *events[0].Responsible)
	require.NotNil(t, events[0].Comments)
	assert.Equal(t, "заклинило шпиндель", *events[0].Comments)
}

func TestStorage_SaveEvent_BatchNotFound(t *testing.T) {
	cleanupTestDB(t)

	_, err := testStorage.SaveEvent(context.Background(), storage.EventDetails{
		Name:      "Наладка",
		BatchID:   9999,
		StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		TimeGroup: storage.TimeGroupPlannedPause,
	})
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
	assert.Equal(t, 0, countRows(t, "events"))
}

// Список событий батча отсортирован по фактическому началу, новые сверху
func TestStorage_ListEvents_Order(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	batchID := createTestOrder(t, defaultOrderFixture())

	earlyID, err := testStorage.SaveEvent(ctx, storage.EventDetails{
		Name:      "Перерыв",
		BatchID:   batchID,
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		TimeGroup: storage.TimeGroupPlannedPause,
	})
	require.NoError(t, err)

	lateID, err := testStorage.SaveEvent(ctx, storage.EventDetails{
		Name:      "Работа",
		BatchID:   batchID,
		StartTime: time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		TimeGroup: storage.TimeGroupUtilization,
	})
	require.NoError(t, err)

	events, err := testStorage.ListEvents(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, lateID, events[0].ID)
	assert.Equal(t, earlyID, events[1].ID)
	assert.Nil(t, events[0].Responsible)
}

func TestStorage_DeleteEvent(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	batchID := createTestOrder(t, defaultOrderFixture())

	eventID, err := testStorage.SaveEvent(ctx, storage.EventDetails{
		Name:      "Наладка",
		BatchID:   batchID,
		StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		TimeGroup: storage.TimeGroupPlannedPause,
	})
	require.NoError(t, err)

	gotBatchID, err := testStorage.DeleteEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, batchID, gotBatchID)
	assert.Equal(t, 0, countRows(t, "events"))
}

func TestStorage_DeleteEvent_NotFound(t *testing.T) {
	cleanupTestDB(t)

	_, err := testStorage.DeleteEvent(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}
