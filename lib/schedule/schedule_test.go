package schedule

import (
	"context"
	"testing"

	fakestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/fake-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newCandidateStore(scheduleCompleted bool) *fakestore.CandidateStore {
	rec := dbmodels.Candidate{
		Status:            models.CandidateStatusHired,
		ScheduleCompleted: scheduleCompleted,
	}
	rec.ID = "c1"
	return fakestore.NewCandidateStore(rec)
}

func TestScheduleCompleted(t *testing.T) {
	ctx := context.TODO()

	t.Run(`redis flag wins check`, func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		require.Nil(t, mr.Set(Key("c1"), "true"))

		completed, err := NewInstance(client, newCandidateStore(false)).ScheduleCompleted(ctx, "c1")
		require.Nil(t, err)
		require.True(t, completed)
	})

	t.Run(`missing key falls back to database check`, func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		completed, err := NewInstance(client, newCandidateStore(true)).ScheduleCompleted(ctx, "c1")
		require.Nil(t, err)
		require.True(t, completed)
	})

	t.Run(`garbage value falls back to database check`, func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		require.Nil(t, mr.Set(Key("c1"), "maybe"))

		completed, err := NewInstance(client, newCandidateStore(false)).ScheduleCompleted(ctx, "c1")
		require.Nil(t, err)
		require.False(t, completed)
	})

	t.Run(`redis down falls back to database check`, func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		mr.Close()

		completed, err := NewInstance(client, newCandidateStore(true)).ScheduleCompleted(ctx, "c1")
		require.Nil(t, err)
		require.True(t, completed)
	})

	t.Run(`database only check`, func(t *testing.T) {
		completed, err := NewInstance(nil, newCandidateStore(false)).ScheduleCompleted(ctx, "c1")
		require.Nil(t, err)
		require.False(t, completed)
	})

	t.Run(`unknown candidate check`, func(t *testing.T) {
		_, err := NewInstance(nil, newCandidateStore(false)).ScheduleCompleted(ctx, "c2")
		require.Equal(t, models.NotFoundError, models.KindOf(err))
	})
}
