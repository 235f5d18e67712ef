package candidatehistoryhandler

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	accountstore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account/store"
	candidatehistorystore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	candidateapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/candidate"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(ctx context.Context, candidateID string, filter apimodels.Pagination) ([]candidateapimodels.HistoryView, int64, error)
	Save(ctx context.Context, candidateID, userID string, action dbmodels.ActionType, changes dbmodels.EntityChanges)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(candidatehistorystore.NewInstance(db.DB), accountstore.NewInstance(db.DB))
}

func NewInstance(store candidatehistorystore.Provider, userStore accountstore.Provider) Provider {
	return impl{
		store:     store,
		userStore: userStore,
	}
}

type impl struct {
	store     candidatehistorystore.Provider
	userStore accountstore.Provider
}

func (i impl) List(ctx context.Context, candidateID string, filter apimodels.Pagination) ([]candidateapimodels.HistoryView, int64, error) {
	rowCount, err := i.store.ListCount(ctx, candidateID)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.HistoryView{}, rowCount, nil
	}

	list, err := i.store.List(ctx, candidateID, page, limit)
	if err != nil {
		log.WithError(err).Error("failed to load candidate history")
		return nil, 0, errors.New("failed to load candidate history")
	}
	result := make([]candidateapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}

// Save never fails the caller: the audit trail is best-effort.
func (i impl) Save(ctx context.Context, candidateID, userID string, action dbmodels.ActionType, changes dbmodels.EntityChanges) {
	logger := log.WithField("candidate_id", candidateID).
		WithField("action", action).
		WithField("description", changes.Description)
	rec := dbmodels.CandidateHistory{
		CandidateID: candidateID,
		ActionType:  action,
		Changes:     changes,
		UserName:    models.SystemUser,
	}
	if userID != "" {
		rec.UserID = &userID
		user, err := i.userStore.GetByID(ctx, userID)
		if err != nil {
			logger.WithError(err).Error("failed to save candidate history, author lookup failed")
			return
		}
		if user != nil {
			rec.UserName = user.GetFullName()
		}
	}
	_, err := i.store.Create(ctx, rec)
	if err != nil {
		logger.WithError(err).Error("failed to save candidate history")
	}
}
