package dbmodels

import (
	"fmt"
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
)

type Candidate struct {
	BaseModel
	UserID                   *string                `gorm:"type:varchar(36);index"` // linked login account
	User                     *User                  `gorm:"foreignKey:UserID"`
	Status                   models.CandidateStatus `gorm:"type:varchar(50);index"`
	FirstName                string                 `gorm:"type:varchar(150)"`
	LastName                 string                 `gorm:"type:varchar(150)"`
	Email                    string                 `gorm:"type:varchar(255);index"`
	Phone                    string                 `gorm:"type:varchar(30)"`
	FortyHourCourseCompleted bool
	ScheduleCompleted        bool // owned by the availability subsystem
	Notes                    string
}

func (c Candidate) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", c.FirstName, c.LastName))
}

func (c Candidate) IsHired() bool {
	return c.Status == models.CandidateStatusHired
}

type CandidateFilter struct {
	Status models.CandidateStatus
	Search string
	Page   int
	Limit  int
}
