package onboardingtaskstore

import (
	"context"

	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.OnboardingTask) (id string, err error)
	GetByID(ctx context.Context, candidateID, id string) (rec *dbmodels.OnboardingTask, err error)
	Update(ctx context.Context, id string, updMap map[string]interface{}) error
	ListByCandidate(ctx context.Context, candidateID string) (list dbmodels.OnboardingTasks, err error)
	DeleteByCandidate(ctx context.Context, candidateID string) (deleted int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.OnboardingTask) (id string, err error) {
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, candidateID, id string) (*dbmodels.OnboardingTask, error) {
	rec := dbmodels.OnboardingTask{}
	err := i.db.WithContext(ctx).
		Where("id = ?", id).
		Where("candidate_id = ?", candidateID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.OnboardingTask{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("task not found")
	}
	return nil
}

func (i impl) ListByCandidate(ctx context.Context, candidateID string) (dbmodels.OnboardingTasks, error) {
	list := dbmodels.OnboardingTasks{}
	err := i.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("sort_order").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByCandidate(ctx context.Context, candidateID string) (int, error) {
	tx := i.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.OnboardingTask{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(tx.RowsAffected), nil
}
