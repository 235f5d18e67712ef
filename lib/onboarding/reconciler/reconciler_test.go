package reconciler

import (
	"context"
	"testing"
	"time"

	fakestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/fake-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newCandidate(id string, status models.CandidateStatus, courseDone bool) dbmodels.Candidate {
	rec := dbmodels.Candidate{
		Status:                   status,
		FirstName:                "Jamie",
		LastName:                 "Rivera",
		Email:                    "jamie.rivera@example.com",
		FortyHourCourseCompleted: courseDone,
	}
	rec.ID = id
	return rec
}

func countCourseTasks(list dbmodels.OnboardingTasks) int {
	count := 0
	for _, task := range list {
		if task.TaskType == models.TaskTypeFortyHourCourse {
			count++
		}
	}
	return count
}

func TestReconcile(t *testing.T) {
	ctx := context.TODO()

	t.Run(`not hired candidate check`, func(t *testing.T) {
		for _, status := range []models.CandidateStatus{
			models.CandidateStatusNew,
			models.CandidateStatusInterviewCompleted,
			models.CandidateStatusRejected,
		} {
			candidates := fakestore.NewCandidateStore(newCandidate("c1", status, false))
			tasks := fakestore.NewTaskStore()
			result, err := NewInstance(candidates, tasks).Reconcile(ctx, "c1")
			require.Nil(t, err)
			require.True(t, result.NoOp)
			require.Equal(t, 0, tasks.Writes())
			list, _ := tasks.ListByCandidate(ctx, "c1")
			require.Len(t, list, 0)
		}
	})

	t.Run(`unknown candidate check`, func(t *testing.T) {
		_, err := NewInstance(fakestore.NewCandidateStore(), fakestore.NewTaskStore()).Reconcile(ctx, "missing")
		require.NotNil(t, err)
		require.Equal(t, models.NotFoundError, models.KindOf(err))
	})

	t.Run(`empty set is materialized check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, false))
		tasks := fakestore.NewTaskStore()
		result, err := NewInstance(candidates, tasks).Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.False(t, result.NoOp)
		require.Equal(t, 9, result.Created)
		require.Equal(t, 0, result.Deleted)
		require.Equal(t, DriftEmpty, result.Reason)
		require.Equal(t, 0, tasks.DeleteCalls)

		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 9)
		require.Equal(t, 1, countCourseTasks(list))
		for idx, task := range list {
			require.Equal(t, idx+1, task.SortOrder)
			require.False(t, task.IsCompleted)
		}
	})

	t.Run(`canonical set is a no-op check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, true))
		tasks := fakestore.NewTaskStore()
		r := NewInstance(candidates, tasks)
		_, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)

		completedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Nil(t, tasks.Update(ctx, list[0].ID, map[string]interface{}{
			"is_completed": true,
			"completed_at": completedAt,
		}))
		writesBefore := tasks.Writes()

		result, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.True(t, result.NoOp)
		require.Equal(t, 0, result.Created)
		require.Equal(t, 0, result.Deleted)
		require.Equal(t, writesBefore, tasks.Writes())

		after, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, after, 8)
		require.True(t, after[0].IsCompleted)
		require.Equal(t, completedAt, *after[0].CompletedAt)
	})

	t.Run(`course flag flipped after hire check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, true))
		tasks := fakestore.NewTaskStore()
		r := NewInstance(candidates, tasks)
		_, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)

		require.Nil(t, candidates.Update(ctx, "c1", map[string]interface{}{"forty_hour_course_completed": false}))
		result, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.Equal(t, DriftCountMismatch, result.Reason)
		require.Equal(t, 8, result.Deleted)
		require.Equal(t, 9, result.Created)

		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 9)
		require.Equal(t, 1, countCourseTasks(list))

		second, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.True(t, second.NoOp)
	})

	t.Run(`missing course task with matching count check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, false))
		tasks := fakestore.NewTaskStore()
		for idx := 1; idx <= 9; idx++ {
			_, _ = tasks.Create(ctx, dbmodels.OnboardingTask{
				CandidateID: "c1",
				TaskType:    models.TaskTypeDocumentDownload,
				SortOrder:   idx,
				IsCompleted: true,
			})
		}
		r := NewInstance(candidates, tasks)
		result, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.Equal(t, DriftMissingCourseTask, result.Reason)
		require.Equal(t, 9, result.Deleted)
		require.Equal(t, 9, result.Created)

		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 9)
		require.Equal(t, 1, countCourseTasks(list))
		require.Equal(t, 0, list.CompletedCount())

		second, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.True(t, second.NoOp)
	})

	t.Run(`duplicated set check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, false))
		tasks := fakestore.NewTaskStore()
		r := NewInstance(candidates, tasks)
		_, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		// a racing request materialized the set a second time
		existing, _ := tasks.ListByCandidate(ctx, "c1")
		for _, task := range existing {
			task.ID = ""
			_, _ = tasks.Create(ctx, task)
		}

		result, err := r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.Equal(t, 18, result.Deleted)
		require.Equal(t, 9, result.Created)
		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 9)
	})

	t.Run(`partial create failure heals on next pass check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, false))
		tasks := fakestore.NewTaskStore()
		tasks.FailCreate = func(call int) bool { return call == 3 || call == 7 }
		r := NewInstance(candidates, tasks)

		result, err := r.Reconcile(ctx, "c1")
		require.NotNil(t, err)
		require.Equal(t, models.PersistenceError, models.KindOf(err))
		require.Equal(t, 7, result.Created)
		list, _ := tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 7)

		tasks.FailCreate = nil
		result, err = r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.Equal(t, DriftCountMismatch, result.Reason)
		require.Equal(t, 7, result.Deleted)
		require.Equal(t, 9, result.Created)

		result, err = r.Reconcile(ctx, "c1")
		require.Nil(t, err)
		require.True(t, result.NoOp)
	})

	t.Run(`delete failure stops before create check`, func(t *testing.T) {
		candidates := fakestore.NewCandidateStore(newCandidate("c1", models.CandidateStatusHired, false))
		tasks := fakestore.NewTaskStore()
		_, _ = tasks.Create(ctx, dbmodels.OnboardingTask{CandidateID: "c1", SortOrder: 1, TaskType: models.TaskTypeDocumentDownload})
		tasks.DeleteErr = errors.New("connection reset")
		createsBefore := tasks.CreateCalls

		_, err := NewInstance(candidates, tasks).Reconcile(ctx, "c1")
		require.NotNil(t, err)
		require.Equal(t, models.PersistenceError, models.KindOf(err))
		require.Equal(t, createsBefore, tasks.CreateCalls)
	})
}

func TestBuildPlan(t *testing.T) {
	canonicalRecords := func(courseDone bool) []dbmodels.OnboardingTask {
		plan := BuildPlan(nil, courseDone)
		list := make([]dbmodels.OnboardingTask, 0, len(plan.Create))
		for _, d := range plan.Create {
			list = append(list, dbmodels.OnboardingTask{TaskType: d.TaskType, SortOrder: d.SortOrder})
		}
		return list
	}

	t.Run(`empty check`, func(t *testing.T) {
		plan := BuildPlan(nil, false)
		require.Equal(t, DriftEmpty, plan.Reason)
		require.False(t, plan.DeleteAll)
		require.Len(t, plan.Create, 9)
	})

	t.Run(`canonical check`, func(t *testing.T) {
		require.True(t, BuildPlan(canonicalRecords(false), false).IsNoOp())
		require.True(t, BuildPlan(canonicalRecords(true), true).IsNoOp())
	})

	t.Run(`unexpected course task check`, func(t *testing.T) {
		list := canonicalRecords(true)
		list[0].TaskType = models.TaskTypeFortyHourCourse
		plan := BuildPlan(list, true)
		require.Equal(t, DriftUnexpectedCourse, plan.Reason)
		require.True(t, plan.DeleteAll)
		require.Len(t, plan.Create, 8)
	})

	t.Run(`order mismatch check`, func(t *testing.T) {
		list := canonicalRecords(false)
		list[3].SortOrder = 12
		plan := BuildPlan(list, false)
		require.Equal(t, DriftOrderMismatch, plan.Reason)

		list = canonicalRecords(false)
		list[7].TaskType, list[8].TaskType = list[8].TaskType, list[7].TaskType
		require.Equal(t, DriftOrderMismatch, BuildPlan(list, false).Reason)
	})

	t.Run(`unsorted but canonical check`, func(t *testing.T) {
		list := canonicalRecords(false)
		list[0], list[8] = list[8], list[0]
		require.True(t, BuildPlan(list, false).IsNoOp())
	})
}
