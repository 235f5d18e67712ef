package candidate

import (
	"bytes"
	"context"
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	xlsexport "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/export/xls"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	initchecker "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/init-checker"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	candidateapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/candidate"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(ctx context.Context, data candidateapimodels.CandidateData, userID string) (id string, err error)
	GetByID(ctx context.Context, id string) (candidateapimodels.CandidateView, error)
	List(ctx context.Context, filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error)
	Update(ctx context.Context, id string, data candidateapimodels.CandidateData, userID string) (candidateapimodels.CandidateView, error)
	ExportXlsx(ctx context.Context, filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"reconciler", reconciler.Instance,
		"history", candidatehistoryhandler.Instance,
		"exporter", xlsexport.Instance,
	)
	Instance = NewInstance(
		candidatestore.NewInstance(db.DB),
		reconciler.Instance,
		candidatehistoryhandler.Instance,
		xlsexport.Instance,
	)
}

func NewInstance(
	store candidatestore.Provider,
	taskReconciler reconciler.Provider,
	history candidatehistoryhandler.Provider,
	exporter xlsexport.Provider,
) Provider {
	return impl{
		store:      store,
		reconciler: taskReconciler,
		history:    history,
		exporter:   exporter,
	}
}

type impl struct {
	store      candidatestore.Provider
	reconciler reconciler.Provider
	history    candidatehistoryhandler.Provider
	exporter   xlsexport.Provider
}

func (i impl) Create(ctx context.Context, data candidateapimodels.CandidateData, userID string) (string, error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	rec := dbmodels.Candidate{
		Status:                   models.CandidateStatusNew,
		FirstName:                strings.TrimSpace(data.FirstName),
		LastName:                 strings.TrimSpace(data.LastName),
		Email:                    account.NormalizeEmail(data.Email),
		Phone:                    strings.TrimSpace(data.Phone),
		FortyHourCourseCompleted: data.FortyHourCourseCompleted,
		Notes:                    data.Notes,
	}
	id, err := i.store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).Error("failed to create candidate")
		return "", models.NewPersistenceError(err, "failed to create candidate")
	}
	i.history.Save(ctx, id, userID, dbmodels.HistoryTypeAdded, dbmodels.EntityChanges{
		Description: "Candidate added: " + rec.GetFullName(),
	})
	return id, nil
}

// GetByID also repairs the onboarding tasks of a hired candidate.
func (i impl) GetByID(ctx context.Context, id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.get(ctx, id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	i.reconcile(ctx, *rec)
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(ctx context.Context, filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	dbFilter := filter.ToDB()
	rowCount, err := i.store.ListCount(ctx, dbFilter)
	if err != nil {
		return nil, 0, models.NewPersistenceError(err, "failed to count candidates")
	}
	offset := (dbFilter.Page - 1) * dbFilter.Limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	list, err := i.store.List(ctx, dbFilter)
	if err != nil {
		log.WithError(err).Error("failed to load candidate list")
		return nil, 0, models.NewPersistenceError(err, "failed to load candidate list")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}

// Update changes profile fields only; status moves through the stage handler.
func (i impl) Update(ctx context.Context, id string, data candidateapimodels.CandidateData, userID string) (candidateapimodels.CandidateView, error) {
	if err := data.Validate(); err != nil {
		return candidateapimodels.CandidateView{}, models.NewValidationError(err.Error())
	}
	rec, err := i.get(ctx, id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	updMap, changes := profileChanges(*rec, data)
	if len(updMap) == 0 {
		return candidateapimodels.CandidateConvert(*rec), nil
	}
	err = i.store.Update(ctx, id, updMap)
	if err != nil {
		log.WithError(err).WithField("candidate_id", id).Error("failed to update candidate")
		return candidateapimodels.CandidateView{}, models.NewPersistenceError(err, "failed to update candidate")
	}
	i.history.Save(ctx, id, userID, dbmodels.HistoryTypeUpdate, changes)

	rec, err = i.get(ctx, id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	i.reconcile(ctx, *rec)
	return candidateapimodels.CandidateConvert(*rec), nil
}

const exportPageSize = 100

// ExportXlsx writes every candidate matching the filter, ignoring its paging.
func (i impl) ExportXlsx(ctx context.Context, filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error) {
	if err := filter.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	dbFilter := filter.ToDB()
	dbFilter.Limit = exportPageSize
	list := []dbmodels.Candidate{}
	for page := 1; ; page++ {
		dbFilter.Page = page
		chunk, err := i.store.List(ctx, dbFilter)
		if err != nil {
			return nil, models.NewPersistenceError(err, "failed to load candidate list")
		}
		list = append(list, chunk...)
		if len(chunk) < exportPageSize {
			break
		}
	}
	buf, err := i.exporter.ExportCandidateList(list)
	if err != nil {
		log.WithError(err).Error("failed to build candidate export")
		return nil, models.WrapAppError(models.PersistenceError, err, "failed to build candidate export")
	}
	return buf, nil
}

func (i impl) get(ctx context.Context, id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewPersistenceError(err, "failed to load candidate")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("candidate not found")
	}
	return rec, nil
}

func (i impl) reconcile(ctx context.Context, rec dbmodels.Candidate) {
	if !rec.IsHired() {
		return
	}
	_, err := i.reconciler.Reconcile(ctx, rec.ID)
	if err != nil {
		log.WithError(err).WithField("candidate_id", rec.ID).Warn("onboarding tasks will be repaired on next access")
	}
}

func profileChanges(rec dbmodels.Candidate, data candidateapimodels.CandidateData) (map[string]interface{}, dbmodels.EntityChanges) {
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{Description: "Candidate profile updated"}
	addString := func(field, oldValue, newValue string) {
		if oldValue == newValue {
			return
		}
		updMap[field] = newValue
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: field, OldValue: oldValue, NewValue: newValue})
	}
	addString("first_name", rec.FirstName, strings.TrimSpace(data.FirstName))
	addString("last_name", rec.LastName, strings.TrimSpace(data.LastName))
	addString("email", rec.Email, account.NormalizeEmail(data.Email))
	addString("phone", rec.Phone, strings.TrimSpace(data.Phone))
	addString("notes", rec.Notes, data.Notes)
	if rec.FortyHourCourseCompleted != data.FortyHourCourseCompleted {
		updMap["forty_hour_course_completed"] = data.FortyHourCourseCompleted
		changes.Data = append(changes.Data, dbmodels.FieldChanges{
			Field:    "forty_hour_course_completed",
			OldValue: rec.FortyHourCourseCompleted,
			NewValue: data.FortyHourCourseCompleted,
		})
	}
	return updMap, changes
}
