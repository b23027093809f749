package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/linework/internal/domain"
	"github.com/alexanderramin/linework/internal/repository"
	"github.com/alexanderramin/linework/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRun(t *testing.T, repo repository.RunRepo, generatedAt time.Time) *domain.ScheduleRun {
	t.Helper()
	run := &domain.ScheduleRun{
		ID:                  uuid.New().String(),
		GeneratedAt:         generatedAt,
		Rate:                1.2,
		PlaceholderResource: "Ramp-Up Crew (Estimate)",
		ItemCount:           1,
		ScheduledCount:      1,
		CreatedAt:           time.Now().UTC(),
	}
	require.NoError(t, repo.CreateRun(context.Background(), run))

	item := testutil.NewTestItem("S1", "P1", "WR-1",
		testutil.WithItemPlacement(1), testutil.WithItemQuantity(12))
	start := generatedAt
	end := generatedAt.AddDate(0, 0, 9)
	item.Start = &start
	item.End = &end
	require.NoError(t, repo.CreateItem(context.Background(), run.ID, item))

	return run
}

func TestRunService_GetRecomputesDuration(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRunRepo(database)
	svc := NewRunService(repo)

	run := seedRun(t, repo, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	detail, err := svc.Get(context.Background(), run.ID)
	require.NoError(t, err)

	assert.Equal(t, run.ID, detail.Run.ID)
	assert.Equal(t, 1.2, detail.Run.Rate)
	require.Len(t, detail.Items, 1)

	it := detail.Items[0]
	assert.Equal(t, "WR-1", it.RequestID)
	assert.Equal(t, 12.0, it.Quantity)
	assert.Equal(t, 10, it.DurationDays, "duration comes from the run's stored rate")
	assert.Equal(t, "2024-01-01", strVal(it.Start))
	assert.Equal(t, "2024-01-10", strVal(it.End))
}

func TestRunService_GetUnknown(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRunService(repository.NewSQLiteRunRepo(database))

	_, err := svc.Get(context.Background(), "no-such-run")
	assert.Error(t, err)
}

func TestRunService_ListNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRunRepo(database)
	svc := NewRunService(repo)

	older := seedRun(t, repo, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	newer := seedRun(t, repo, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	runs, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)

	limited, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestRunService_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRunRepo(database)
	svc := NewRunService(repo)

	run := seedRun(t, repo, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, svc.Delete(context.Background(), run.ID))

	_, err := svc.Get(context.Background(), run.ID)
	assert.Error(t, err)

	assert.Error(t, svc.Delete(context.Background(), run.ID), "deleting twice reports missing run")
}
