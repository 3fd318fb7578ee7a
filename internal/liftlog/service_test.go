package liftlog_test

import (
	"context"
	"testing"

	"github.com/2beens/liftlog/internal/liftlog"
	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServiceSetup(t *testing.T) (*liftlog.Service, *state.TestStore) {
	t.Helper()

	store := state.NewTestStore()
	service := liftlog.NewService(store, catalog.DefaultSchedule())
	require.NoError(t, service.Load(context.Background()))
	return service, store
}

func firstOfToday(t *testing.T, service *liftlog.Service) liftlog.SessionExercise {
	t.Helper()

	s := service.CurrentSession(context.Background())
	require.NotEmpty(t, s.Circuit1)
	return s.Circuit1[0]
}

func TestService_Load_FirstRun(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()

	assert.Equal(t, 1, service.CurrentWeek())
	assert.Equal(t, catalog.Seed(), service.Catalog(ctx))

	s := service.CurrentSession(ctx)
	assert.Equal(t, 1, s.Week)
	assert.Equal(t, 0, s.DayIndex)
	assert.Equal(t, catalog.DayPushA, s.Day.Type)
	assert.False(t, s.LastDay)
	assert.NotEmpty(t, s.Circuit1)
	assert.NotEmpty(t, s.Circuit2)
}

func TestService_Load_PicksUpPersistedState(t *testing.T) {
	store := state.NewTestStore()
	ctx := context.Background()
	require.NoError(t, state.SaveWeek(ctx, store, 5))
	require.NoError(t, state.SaveDayIndex(ctx, store, 2))

	service := liftlog.NewService(store, catalog.DefaultSchedule())
	require.NoError(t, service.Load(ctx))

	assert.Equal(t, 5, service.CurrentWeek())
	assert.Equal(t, 2, service.CurrentSession(ctx).DayIndex)
}

func TestService_LogSet(t *testing.T) {
	service, store := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	entry, err := service.LogSet(ctx, ex.ID, 42.5, 9)
	require.NoError(t, err)
	assert.Equal(t, ex.ID, entry.ExerciseID)
	assert.Equal(t, 42.5, entry.Weight)
	assert.Equal(t, 9, entry.Reps)
	assert.Equal(t, 1, entry.Week)
	assert.True(t, entry.Completed)
	assert.False(t, entry.Timestamp.IsZero())

	logs, err := service.WeekLogs(ctx, ex.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	// history and catalog are written back to the store
	_, err = store.Get(ctx, state.KeyHistory)
	require.NoError(t, err)
	_, err = store.Get(ctx, state.KeyCatalog)
	require.NoError(t, err)

	// defaults follow the logged set
	updated := service.Catalog(ctx)
	i := catalog.FindByID(updated, ex.ID)
	require.NotEqual(t, -1, i)
	assert.Equal(t, 9, updated[i].DefaultReps)
	require.NotNil(t, updated[i].DefaultWeight)
	assert.Equal(t, 42.5, *updated[i].DefaultWeight)
}

func TestService_LogSet_Validation(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	_, err := service.LogSet(ctx, ex.ID, 42.5, 0)
	require.Error(t, err)
	_, err = service.LogSet(ctx, ex.ID, 42.5, -3)
	require.Error(t, err)

	_, err = service.LogSet(ctx, "does-not-exist", 42.5, 10)
	assert.ErrorIs(t, err, liftlog.ErrExerciseNotFound)
}

func TestService_UpdateSet(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	_, err := service.LogSet(ctx, ex.ID, 40, 10)
	require.NoError(t, err)
	_, err = service.LogSet(ctx, ex.ID, 40, 10)
	require.NoError(t, err)

	updated, err := service.UpdateSet(ctx, ex.ID, 1, 45, 8)
	require.NoError(t, err)
	assert.True(t, updated)

	logs, err := service.WeekLogs(ctx, ex.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 40.0, logs[0].Weight)
	assert.Equal(t, 45.0, logs[1].Weight)
	assert.Equal(t, 8, logs[1].Reps)
}

func TestService_UpdateSet_OutOfRange(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	_, err := service.LogSet(ctx, ex.ID, 40, 10)
	require.NoError(t, err)

	updated, err := service.UpdateSet(ctx, ex.ID, 5, 45, 8)
	require.NoError(t, err)
	assert.False(t, updated)

	logs, err := service.WeekLogs(ctx, ex.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 40.0, logs[0].Weight)
}

func TestService_ResetWeek(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	_, err := service.LogSet(ctx, ex.ID, 40, 10)
	require.NoError(t, err)
	require.NoError(t, service.ResetWeek(ctx, ex.ID))

	logs, err := service.WeekLogs(ctx, ex.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)

	assert.ErrorIs(t, service.ResetWeek(ctx, "does-not-exist"), liftlog.ErrExerciseNotFound)
}

func TestService_Recommendation_WeekOverWeek(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	// week 1: complete the full session
	for i := 0; i < ex.DefaultSets; i++ {
		_, err := service.LogSet(ctx, ex.ID, 30, 10)
		require.NoError(t, err)
	}

	week, err := service.FinishWeek(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, week)

	recommended, err := service.Recommendation(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, 32.5, recommended)

	_, err = service.Recommendation(ctx, "does-not-exist")
	assert.ErrorIs(t, err, liftlog.ErrExerciseNotFound)
}

func TestService_Swap_WithBenched(t *testing.T) {
	service, store := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	candidates, err := service.SwapCandidates(ctx, ex.ID)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	target := candidates[0]

	swapped, err := service.Swap(ctx, ex.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, swapped)

	// the swapped-out exercise went to the bench
	updated := service.Catalog(ctx)
	assert.Equal(t, catalog.StatusBench, updated[catalog.FindByID(updated, ex.ID)].Status)

	// the catalog was written back
	_, err = store.Get(ctx, state.KeyCatalog)
	require.NoError(t, err)
}

func TestService_Swap_UnknownIDs_NoOp(t *testing.T) {
	service, store := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	swapped, err := service.Swap(ctx, ex.ID, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, swapped)

	// nothing persisted for a no-op swap
	_, err = store.Get(ctx, state.KeyCatalog)
	assert.ErrorIs(t, err, state.ErrKeyNotFound)
}

func TestService_FinishDay(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()
	schedule := catalog.DefaultSchedule()

	for i := 1; i < len(schedule); i++ {
		dayIndex, err := service.FinishDay(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, dayIndex)
	}

	s := service.CurrentSession(ctx)
	assert.True(t, s.LastDay)

	// the last day never rolls over by itself
	dayIndex, err := service.FinishDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(schedule)-1, dayIndex)
	assert.Equal(t, 1, service.CurrentWeek())
}

func TestService_FinishWeek(t *testing.T) {
	service, _ := testServiceSetup(t)
	ctx := context.Background()

	_, err := service.FinishDay(ctx)
	require.NoError(t, err)

	week, err := service.FinishWeek(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, week)

	s := service.CurrentSession(ctx)
	assert.Equal(t, 2, s.Week)
	assert.Equal(t, 0, s.DayIndex)
}

func TestService_HardReset(t *testing.T) {
	service, store := testServiceSetup(t)
	ctx := context.Background()
	ex := firstOfToday(t, service)

	_, err := service.LogSet(ctx, ex.ID, 40, 10)
	require.NoError(t, err)
	_, err = service.FinishWeek(ctx)
	require.NoError(t, err)

	require.NoError(t, service.HardReset(ctx))

	assert.Equal(t, 1, service.CurrentWeek())
	assert.Equal(t, catalog.Seed(), service.Catalog(ctx))
	assert.Zero(t, store.Len())

	logs, err := service.WeekLogs(ctx, ex.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
