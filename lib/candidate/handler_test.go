package candidate

import (
	"context"
	"testing"

	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	xlsexport "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/export/xls"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	fakestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/fake-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	candidateapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/candidate"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testEnv struct {
	candidates *fakestore.CandidateStore
	tasks      *fakestore.TaskStore
	history    *fakestore.HistoryStore
	handler    Provider
}

func newEnv(list ...dbmodels.Candidate) *testEnv {
	env := &testEnv{
		candidates: fakestore.NewCandidateStore(list...),
		tasks:      fakestore.NewTaskStore(),
		history:    &fakestore.HistoryStore{},
	}
	env.handler = NewInstance(
		env.candidates,
		reconciler.NewInstance(env.candidates, env.tasks),
		candidatehistoryhandler.NewInstance(env.history, fakestore.NewAccountStore()),
		xlsexport.NewInstance(),
	)
	return env
}

func validData() candidateapimodels.CandidateData {
	return candidateapimodels.CandidateData{
		FirstName: " Jamie ",
		LastName:  "Rivera",
		Email:     "Jamie.Rivera@Example.com",
		Phone:     "+15551234567",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.TODO()

	t.Run(`create check`, func(t *testing.T) {
		env := newEnv()
		id, err := env.handler.Create(ctx, validData(), "admin1")
		require.Nil(t, err)
		view, err := env.handler.GetByID(ctx, id)
		require.Nil(t, err)
		require.Equal(t, models.CandidateStatusNew, view.Status)
		require.Equal(t, "Jamie", view.FirstName)
		require.Equal(t, "jamie.rivera@example.com", view.Email)
		require.Equal(t, []models.CandidateAction{models.ActionReachOut, models.ActionReject}, view.AvailableActions)
		require.Len(t, env.history.Records, 1)
		require.Equal(t, 0, env.tasks.Writes())
	})

	t.Run(`validation check`, func(t *testing.T) {
		env := newEnv()
		data := validData()
		data.LastName = ""
		_, err := env.handler.Create(ctx, data, "admin1")
		require.Equal(t, models.ValidationError, models.KindOf(err))

		data = validData()
		data.Email = "not an email"
		_, err = env.handler.Create(ctx, data, "admin1")
		require.Equal(t, models.ValidationError, models.KindOf(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.TODO()

	hired := func() dbmodels.Candidate {
		rec := dbmodels.Candidate{
			Status:    models.CandidateStatusHired,
			FirstName: "Jamie",
			LastName:  "Rivera",
			Email:     "jamie.rivera@example.com",
			Phone:     "+15551234567",
		}
		rec.ID = "c1"
		return rec
	}

	t.Run(`course flag change rebuilds tasks check`, func(t *testing.T) {
		env := newEnv(hired())
		_, err := env.handler.GetByID(ctx, "c1")
		require.Nil(t, err)
		list, _ := env.tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 9)

		data := validData()
		data.FortyHourCourseCompleted = true
		view, err := env.handler.Update(ctx, "c1", data, "admin1")
		require.Nil(t, err)
		require.True(t, view.FortyHourCourseCompleted)
		list, _ = env.tasks.ListByCandidate(ctx, "c1")
		require.Len(t, list, 8)

		require.Len(t, env.history.Records, 1)
		require.Equal(t, dbmodels.HistoryTypeUpdate, env.history.Records[0].ActionType)
		require.Len(t, env.history.Records[0].Changes.Data, 1)
	})

	t.Run(`unchanged profile check`, func(t *testing.T) {
		env := newEnv(hired())
		_, err := env.handler.Update(ctx, "c1", validData(), "admin1")
		require.Nil(t, err)
		require.Equal(t, 0, env.candidates.UpdateCall)
		require.Len(t, env.history.Records, 0)
	})

	t.Run(`unknown candidate check`, func(t *testing.T) {
		env := newEnv()
		_, err := env.handler.Update(ctx, "nope", validData(), "admin1")
		require.Equal(t, models.NotFoundError, models.KindOf(err))
	})
}

func TestList(t *testing.T) {
	ctx := context.TODO()
	newRec := func(id, first string, status models.CandidateStatus) dbmodels.Candidate {
		rec := dbmodels.Candidate{Status: status, FirstName: first, LastName: "Smith", Email: id + "@example.com"}
		rec.ID = id
		return rec
	}
	env := newEnv(
		newRec("a1", "Alex", models.CandidateStatusNew),
		newRec("a2", "Blair", models.CandidateStatusHired),
		newRec("a3", "Casey", models.CandidateStatusNew),
	)

	t.Run(`status filter check`, func(t *testing.T) {
		list, count, err := env.handler.List(ctx, candidateapimodels.CandidateFilter{Status: string(models.CandidateStatusNew)})
		require.Nil(t, err)
		require.Equal(t, int64(2), count)
		require.Len(t, list, 2)
	})

	t.Run(`search check`, func(t *testing.T) {
		list, count, err := env.handler.List(ctx, candidateapimodels.CandidateFilter{Search: "blair"})
		require.Nil(t, err)
		require.Equal(t, int64(1), count)
		require.Equal(t, "a2", list[0].ID)
	})

	t.Run(`page past the end check`, func(t *testing.T) {
		list, count, err := env.handler.List(ctx, candidateapimodels.CandidateFilter{
			Pagination: apimodels.Pagination{Page: 3, Limit: 2},
		})
		require.Nil(t, err)
		require.Equal(t, int64(3), count)
		require.Len(t, list, 0)
	})

	t.Run(`export ignores paging check`, func(t *testing.T) {
		buf, err := env.handler.ExportXlsx(ctx, candidateapimodels.CandidateFilter{
			Pagination: apimodels.Pagination{Page: 2, Limit: 1},
		})
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		require.Nil(t, err)
		require.Len(t, rows, 4)
	})

	t.Run(`bad status check`, func(t *testing.T) {
		_, _, err := env.handler.List(ctx, candidateapimodels.CandidateFilter{Status: "ONBOARDED"})
		require.Equal(t, models.ValidationError, models.KindOf(err))
	})
}
