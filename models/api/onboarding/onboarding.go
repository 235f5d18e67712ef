package onboardingapimodels

import (
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
)

type TaskView struct {
	ID                  string          `json:"id"`
	TaskType            models.TaskType `json:"task_type"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	DocumentDownloadUrl string          `json:"document_download_url,omitempty"`
	SortOrder           int             `json:"sort_order"`
	IsCompleted         bool            `json:"is_completed"`
	CompletedAt         string          `json:"completed_at,omitempty"`
	UploadUrl           string          `json:"upload_url,omitempty"`
}

func TaskConvert(rec dbmodels.OnboardingTask) TaskView {
	result := TaskView{
		ID:                  rec.ID,
		TaskType:            rec.TaskType,
		Title:               rec.Title,
		Description:         rec.Description,
		DocumentDownloadUrl: rec.DocumentDownloadUrl,
		SortOrder:           rec.SortOrder,
		IsCompleted:         rec.IsCompleted,
		UploadUrl:           rec.UploadUrl,
	}
	if rec.CompletedAt != nil {
		result.CompletedAt = rec.CompletedAt.Format("01/02/2006 15:04")
	}
	return result
}

type DashboardView struct {
	CandidateID       string           `json:"candidate_id"`
	FullName          string           `json:"full_name"`
	Gate              models.GateState `json:"gate"` // which screen the UI must render
	AllTasksCompleted bool             `json:"all_tasks_completed"`
	ScheduleCompleted bool             `json:"schedule_completed"`
	CompletedCount    int              `json:"completed_count"`
	TotalCount        int              `json:"total_count"`
	Tasks             []TaskView       `json:"tasks"`
}

type CompleteTaskData struct {
	UploadUrl string `json:"upload_url"` // certificate link or signature payload
}
