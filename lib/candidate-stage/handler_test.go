package candidatestage

import (
	"context"
	"testing"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	fakestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/fake-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	kind        string
	candidateID string
}

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

func (f *fakeNotifier) record(kind string, candidate dbmodels.Candidate) error {
	f.sent = append(f.sent, sentMessage{kind: kind, candidateID: candidate.ID})
	return f.err
}

func (f *fakeNotifier) SendOfferEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	return f.record("offer", candidate)
}

func (f *fakeNotifier) SendRejectionEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	return f.record("rejection", candidate)
}

func (f *fakeNotifier) SendReachOutEmail(ctx context.Context, candidate dbmodels.Candidate) error {
	return f.record("reach_out", candidate)
}

func (f *fakeNotifier) count(kind string) int {
	count := 0
	for _, msg := range f.sent {
		if msg.kind == kind {
			count++
		}
	}
	return count
}

type testEnv struct {
	candidates *fakestore.CandidateStore
	tasks      *fakestore.TaskStore
	accounts   *fakestore.AccountStore
	history    *fakestore.HistoryStore
	notifier   *fakeNotifier
	handler    Provider
}

func newEnv(candidates []dbmodels.Candidate, users ...dbmodels.User) *testEnv {
	env := &testEnv{
		candidates: fakestore.NewCandidateStore(candidates...),
		tasks:      fakestore.NewTaskStore(),
		accounts:   fakestore.NewAccountStore(users...),
		history:    &fakestore.HistoryStore{},
		notifier:   &fakeNotifier{},
	}
	env.handler = NewInstance(
		env.candidates,
		account.NewInstance(env.accounts),
		reconciler.NewInstance(env.candidates, env.tasks),
		env.notifier,
		candidatehistoryhandler.NewInstance(env.history, env.accounts),
	)
	return env
}

func (e *testEnv) status(t *testing.T, id string) models.CandidateStatus {
	rec, err := e.candidates.GetByID(context.TODO(), id)
	require.Nil(t, err)
	require.NotNil(t, rec)
	return rec.Status
}

func (e *testEnv) taskCount(t *testing.T, id string) int {
	list, err := e.tasks.ListByCandidate(context.TODO(), id)
	require.Nil(t, err)
	return len(list)
}

func newCandidate(id, email string, userID *string) dbmodels.Candidate {
	rec := dbmodels.Candidate{
		UserID:    userID,
		Status:    models.CandidateStatusInterviewCompleted,
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     email,
	}
	rec.ID = id
	return rec
}

func newUser(id, email string, role models.UserRole) dbmodels.User {
	rec := dbmodels.User{
		FirstName: "Account",
		LastName:  "Owner",
		Email:     email,
		Role:      role,
		IsActive:  true,
	}
	rec.ID = id
	return rec
}

func strPtr(v string) *string {
	return &v
}

func TestHire(t *testing.T) {
	ctx := context.TODO()

	t.Run(`hire creates account and tasks check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "Jamie.Rivera@example.com", nil)})
		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Equal(t, models.CandidateStatusHired, env.status(t, "c1"))
		require.True(t, result.AccountEmailSynced)
		require.Nil(t, result.ReconcileErr)
		require.Equal(t, 9, result.Reconcile.Created)
		require.Equal(t, 9, env.taskCount(t, "c1"))
		require.True(t, result.Notification.Attempted)
		require.True(t, result.Notification.Sent)
		require.Equal(t, 1, env.notifier.count("offer"))

		user, err := env.accounts.FindByEmail(ctx, "jamie.rivera@example.com")
		require.Nil(t, err)
		require.NotNil(t, user)
		require.Equal(t, models.UserRoleRBT, user.Role)
		require.True(t, user.IsActive)
		require.Equal(t, user.ID, *result.Candidate.UserID)

		rec, _ := env.candidates.GetByID(ctx, "c1")
		require.Equal(t, user.ID, *rec.UserID)
		require.Len(t, env.history.Records, 1)
		require.Equal(t, dbmodels.HistoryTypeHire, env.history.Records[0].ActionType)
	})

	t.Run(`missing email check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "  ", nil)})
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.NotNil(t, err)
		require.Equal(t, models.ValidationError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
		require.Len(t, env.accounts.Records, 0)
		require.Equal(t, 0, env.notifier.count("offer"))
	})

	t.Run(`email owned by another candidate check`, func(t *testing.T) {
		other := newCandidate("c2", "someone@example.com", strPtr("u2"))
		other.Status = models.CandidateStatusHired
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "someone@example.com", nil), other},
			newUser("u2", "someone@example.com", models.UserRoleRBT),
		)
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.NotNil(t, err)
		require.Equal(t, models.ConflictError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
		require.Equal(t, 0, env.taskCount(t, "c1"))
		require.Equal(t, 0, env.notifier.count("offer"))
	})

	t.Run(`email owned by admin check`, func(t *testing.T) {
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "boss@example.com", nil)},
			newUser("u9", "boss@example.com", models.UserRoleAdmin),
		)
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Equal(t, models.ConflictError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
	})

	t.Run(`linked account with other email check`, func(t *testing.T) {
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "someone@example.com", strPtr("u1"))},
			newUser("u1", "jamie@example.com", models.UserRoleCandidate),
			newUser("u2", "someone@example.com", models.UserRoleRBT),
		)
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Equal(t, models.ConflictError, models.KindOf(err))
	})

	t.Run(`email sync degrades to role update check`, func(t *testing.T) {
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "new.address@example.com", strPtr("u1"))},
			newUser("u1", "old.address@example.com", models.UserRoleCandidate),
		)
		env.accounts.RejectEmailUpdate = true

		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.False(t, result.AccountEmailSynced)
		require.Equal(t, models.CandidateStatusHired, env.status(t, "c1"))

		user, _ := env.accounts.GetByID(ctx, "u1")
		require.Equal(t, models.UserRoleRBT, user.Role)
		require.Equal(t, "old.address@example.com", user.Email)
		require.Len(t, env.accounts.Updates, 2)
	})

	t.Run(`linked account email is synced check`, func(t *testing.T) {
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "new.address@example.com", strPtr("u1"))},
			newUser("u1", "old.address@example.com", models.UserRoleCandidate),
		)
		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.True(t, result.AccountEmailSynced)
		user, _ := env.accounts.GetByID(ctx, "u1")
		require.Equal(t, "new.address@example.com", user.Email)
		require.Equal(t, models.UserRoleRBT, user.Role)
	})

	t.Run(`repeated hire check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)

		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.True(t, result.Reconcile.NoOp)
		require.False(t, result.Notification.Attempted)
		require.Equal(t, 9, env.taskCount(t, "c1"))
		require.Equal(t, 1, env.notifier.count("offer"))
		require.Len(t, env.accounts.Records, 1)
		require.Len(t, env.history.Records, 1)
	})

	t.Run(`course already completed check`, func(t *testing.T) {
		rec := newCandidate("c1", "jamie@example.com", nil)
		rec.FortyHourCourseCompleted = true
		env := newEnv([]dbmodels.Candidate{rec})
		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Equal(t, 8, result.Reconcile.Created)
	})

	t.Run(`task failure does not fail hire check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		env.tasks.FailCreate = func(call int) bool { return true }

		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.NotNil(t, result.ReconcileErr)
		require.Equal(t, models.PersistenceError, models.KindOf(result.ReconcileErr))
		require.Equal(t, models.CandidateStatusHired, env.status(t, "c1"))
		require.NotEmpty(t, result.View().Tasks.Error)

		env.tasks.FailCreate = nil
		result, err = env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Equal(t, 9, result.Reconcile.Created)
	})

	t.Run(`notification failure does not fail hire check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		env.notifier.err = errors.New("smtp timeout")

		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.True(t, result.Notification.Attempted)
		require.False(t, result.Notification.Sent)
		require.Equal(t, models.NotificationError, models.KindOf(result.Notification.Err))
		require.Equal(t, models.CandidateStatusHired, env.status(t, "c1"))
	})

	t.Run(`status write failure then retry check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		// the account link is written first, the status write second
		env.candidates.FailUpdate = func(call int) bool { return call == 2 }

		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Equal(t, models.PersistenceError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
		require.Equal(t, 0, env.taskCount(t, "c1"))
		require.Equal(t, 0, env.notifier.count("offer"))

		rec, _ := env.candidates.GetByID(ctx, "c1")
		require.NotNil(t, rec.UserID)

		env.candidates.FailUpdate = nil
		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Len(t, env.accounts.Records, 1)
		require.Equal(t, models.CandidateStatusHired, env.status(t, "c1"))
		require.Equal(t, *rec.UserID, *result.Candidate.UserID)
		require.Equal(t, 1, env.notifier.count("offer"))
	})

	t.Run(`unlinked account with candidate email check`, func(t *testing.T) {
		env := newEnv(
			[]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)},
			newUser("u7", "jamie@example.com", models.UserRoleCandidate),
		)
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Equal(t, models.ConflictError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
		rec, _ := env.candidates.GetByID(ctx, "c1")
		require.Nil(t, rec.UserID)
		require.Len(t, env.accounts.Updates, 0)
	})

	t.Run(`account link failure check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		env.candidates.FailUpdate = func(call int) bool { return call == 1 }

		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Equal(t, models.PersistenceError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))
		require.Equal(t, 1, env.candidates.UpdateCall)
		require.Equal(t, 0, env.notifier.count("offer"))
	})

	t.Run(`unknown candidate check`, func(t *testing.T) {
		env := newEnv(nil)
		_, err := env.handler.Hire(ctx, "missing", "admin1")
		require.Equal(t, models.NotFoundError, models.KindOf(err))
	})
}

func TestReject(t *testing.T) {
	ctx := context.TODO()

	t.Run(`reject check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		result, err := env.handler.Reject(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Equal(t, models.CandidateStatusRejected, env.status(t, "c1"))
		require.True(t, result.Notification.Sent)
		require.Equal(t, 1, env.notifier.count("rejection"))
		require.Equal(t, 0, env.taskCount(t, "c1"))
		require.Len(t, result.Candidate.Status.AvailableActions(), 0)

		result, err = env.handler.Reject(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.False(t, result.Notification.Attempted)
		require.Equal(t, 1, env.notifier.count("rejection"))
	})

	t.Run(`status write failure check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		env.candidates.UpdateErr = errors.New("connection refused")
		_, err := env.handler.Reject(ctx, "c1", "admin1")
		require.Equal(t, models.PersistenceError, models.KindOf(err))
		require.Equal(t, 0, env.notifier.count("rejection"))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.TODO()

	t.Run(`reach out sends message check`, func(t *testing.T) {
		rec := newCandidate("c1", "jamie@example.com", nil)
		rec.Status = models.CandidateStatusNew
		env := newEnv([]dbmodels.Candidate{rec})

		result, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusReachOut, "admin1")
		require.Nil(t, err)
		require.True(t, result.Notification.Sent)
		require.Equal(t, models.CandidateStatusReachOut, env.status(t, "c1"))
		require.Equal(t, 1, env.notifier.count("reach_out"))

		result, err = env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusReachOut, "admin1")
		require.Nil(t, err)
		require.False(t, result.Notification.Attempted)
		require.Equal(t, 1, env.notifier.count("reach_out"))
	})

	t.Run(`any status is accepted check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		result, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusNew, "admin1")
		require.Nil(t, err)
		require.False(t, result.Notification.Attempted)
		require.Equal(t, models.CandidateStatusNew, env.status(t, "c1"))
		require.Len(t, env.history.Records, 1)
		require.Equal(t, dbmodels.HistoryTypeStageChange, env.history.Records[0].ActionType)
	})

	t.Run(`hired routes through hire check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "", nil)})
		_, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusHired, "admin1")
		require.Equal(t, models.ValidationError, models.KindOf(err))
		require.Equal(t, models.CandidateStatusInterviewCompleted, env.status(t, "c1"))

		env = newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		result, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusHired, "admin1")
		require.Nil(t, err)
		require.Equal(t, 9, result.Reconcile.Created)
		require.Equal(t, 1, env.notifier.count("offer"))
	})

	t.Run(`rejected routes through reject check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		_, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusRejected, "admin1")
		require.Nil(t, err)
		require.Equal(t, 1, env.notifier.count("rejection"))
	})

	t.Run(`moving out of hired keeps tasks check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		_, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		_, err = env.handler.UpdateStatus(ctx, "c1", models.CandidateStatusInterviewCompleted, "admin1")
		require.Nil(t, err)
		require.Equal(t, 9, env.taskCount(t, "c1"))

		// a re-hire reconciles the kept set instead of rebuilding it
		writes := env.tasks.Writes()
		result, err := env.handler.Hire(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.True(t, result.Reconcile.NoOp)
		require.Equal(t, writes, env.tasks.Writes())

		_, err = env.handler.Reject(ctx, "c1", "admin1")
		require.Nil(t, err)
		require.Equal(t, 9, env.taskCount(t, "c1"))
	})

	t.Run(`invalid status check`, func(t *testing.T) {
		env := newEnv([]dbmodels.Candidate{newCandidate("c1", "jamie@example.com", nil)})
		_, err := env.handler.UpdateStatus(ctx, "c1", models.CandidateStatus("ONBOARDED"), "admin1")
		require.Equal(t, models.ValidationError, models.KindOf(err))
	})
}
