package dbmodels

import (
	"fmt"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
)

// User is a login account. Email is unique across the whole user population.
type User struct {
	BaseModel
	FirstName string          `gorm:"type:varchar(150)"`
	LastName  string          `gorm:"type:varchar(150)"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string          `gorm:"type:varchar(30)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool
	LastLogin *time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
