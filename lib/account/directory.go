package account

import (
	"context"
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	accountstore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/account/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when an email write hits the unique index.
var ErrEmailTaken = errors.New("email is already bound to another account")

type AccountUpdate struct {
	Role   models.UserRole
	Email  *string // nil leaves the email untouched
	Active bool
}

// Directory is the account lookup used by the hire flow.
type Directory interface {
	FindAccountByEmail(ctx context.Context, email string) (*dbmodels.User, error)
	UpdateAccount(ctx context.Context, accountID string, upd AccountUpdate) error
	CreateAccount(ctx context.Context, rec dbmodels.User) (string, error)
}

var Instance Directory

func NewHandler() {
	Instance = NewInstance(accountstore.NewInstance(db.DB))
}

func NewInstance(store accountstore.Provider) Directory {
	return impl{store: store}
}

type impl struct {
	store accountstore.Provider
}

func (i impl) FindAccountByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	return i.store.FindByEmail(ctx, email)
}

func (i impl) UpdateAccount(ctx context.Context, accountID string, upd AccountUpdate) error {
	updMap := map[string]interface{}{
		"role":      upd.Role,
		"is_active": upd.Active,
	}
	if upd.Email != nil {
		updMap["email"] = NormalizeEmail(*upd.Email)
	}
	err := i.store.Update(ctx, accountID, updMap)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (i impl) CreateAccount(ctx context.Context, rec dbmodels.User) (string, error) {
	rec.Email = NormalizeEmail(rec.Email)
	id, err := i.store.Create(ctx, rec)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", ErrEmailTaken
	}
	return id, err
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
