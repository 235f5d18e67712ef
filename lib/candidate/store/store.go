package candidatestore

import (
	"context"
	"strings"

	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Candidate) (id string, err error)
	Update(ctx context.Context, id string, updMap map[string]interface{}) error
	GetByID(ctx context.Context, id string) (rec *dbmodels.Candidate, err error)
	GetByUserID(ctx context.Context, userID string) (rec *dbmodels.Candidate, err error)
	List(ctx context.Context, filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	ListCount(ctx context.Context, filter dbmodels.CandidateFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Candidate) (id string, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Candidate, error) {
	return i.getBy(ctx, "id = ?", id)
}

func (i impl) GetByUserID(ctx context.Context, userID string) (*dbmodels.Candidate, error) {
	return i.getBy(ctx, "user_id = ?", userID)
}

func (i impl) getBy(ctx context.Context, query string, value string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Where(query, value).
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

func (i impl) List(ctx context.Context, filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	i.setPage(tx, filter.Page, filter.Limit)
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(ctx context.Context, filter dbmodels.CandidateFilter) (count int64, err error) {
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(first_name, ' ', last_name)) like ? or LOWER(email) like ? or phone like ?", searchValue, searchValue, searchValue)
	}
}

func (i impl) setPage(tx *gorm.DB, pageValue, limitValue int) {
	page, limit := GetPage(pageValue, limitValue)
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func GetPage(pageValue, limitValue int) (page, limit int) {
	page = 1
	limit = 10
	if pageValue > 0 {
		page = pageValue
	}
	if limitValue > 0 {
		limit = limitValue
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
