package dbmodels

import (
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
)

type OnboardingTask struct {
	BaseModel
	CandidateID         string          `gorm:"type:varchar(36);index"`
	TaskType            models.TaskType `gorm:"type:varchar(50)"`
	Title               string          `gorm:"type:varchar(255)"`
	Description         string
	DocumentDownloadUrl string
	SortOrder           int
	IsCompleted         bool
	CompletedAt         *time.Time
	UploadUrl           string // proof of completion, format owned by the completion handler
}

type OnboardingTasks []OnboardingTask

func (l OnboardingTasks) AllCompleted() bool {
	if len(l) == 0 {
		return false
	}
	for _, task := range l {
		if !task.IsCompleted {
			return false
		}
	}
	return true
}

func (l OnboardingTasks) CompletedCount() int {
	count := 0
	for _, task := range l {
		if task.IsCompleted {
			count++
		}
	}
	return count
}
