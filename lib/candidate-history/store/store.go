package candidatehistorystore

import (
	"context"

	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.CandidateHistory) (id string, err error)
	ListCount(ctx context.Context, candidateID string) (count int64, err error)
	List(ctx context.Context, candidateID string, page, limit int) (list []dbmodels.CandidateHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.CandidateHistory) (id string, err error) {
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(ctx context.Context, candidateID string) (count int64, err error) {
	err = i.db.WithContext(ctx).
		Model(dbmodels.CandidateHistory{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count candidate history")
	}
	return count, nil
}

func (i impl) List(ctx context.Context, candidateID string, page, limit int) (list []dbmodels.CandidateHistory, err error) {
	list = []dbmodels.CandidateHistory{}
	offset := (page - 1) * limit
	err = i.db.WithContext(ctx).
		Model(dbmodels.CandidateHistory{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
