package candidateapimodels

import (
	"net/mail"
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
)

type CandidateData struct {
	FirstName                string `json:"first_name"`
	LastName                 string `json:"last_name"`
	Email                    string `json:"email"`
	Phone                    string `json:"phone"`
	FortyHourCourseCompleted bool   `json:"forty_hour_course_completed"` // 40-hour RBT course already done
	Notes                    string `json:"notes"`
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return errors.New("last name is required")
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return errors.New("email address is not valid")
		}
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID                string                   `json:"id"`
	UserID            string                   `json:"user_id"`
	Status            models.CandidateStatus   `json:"status"`
	StatusName        string                   `json:"status_name"`
	ScheduleCompleted bool                     `json:"schedule_completed"`
	AvailableActions  []models.CandidateAction `json:"available_actions"` // admin buttons for the current status
	CreatedAt         string                   `json:"created_at"`
	UpdatedAt         string                   `json:"updated_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		CandidateData: CandidateData{
			FirstName:                rec.FirstName,
			LastName:                 rec.LastName,
			Email:                    rec.Email,
			Phone:                    rec.Phone,
			FortyHourCourseCompleted: rec.FortyHourCourseCompleted,
			Notes:                    rec.Notes,
		},
		ID:                rec.ID,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		ScheduleCompleted: rec.ScheduleCompleted,
		AvailableActions:  rec.Status.AvailableActions(),
		CreatedAt:         rec.CreatedAt.Format("01/02/2006 15:04"),
		UpdatedAt:         rec.UpdatedAt.Format("01/02/2006 15:04"),
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}

type CandidateFilter struct {
	apimodels.Pagination
	Status string `json:"status"` // optional status filter
	Search string `json:"search"` // name, email or phone
}

func (f CandidateFilter) Validate() error {
	if f.Status == "" {
		return nil
	}
	_, err := models.ParseCandidateStatus(f.Status)
	return err
}

func (f CandidateFilter) ToDB() dbmodels.CandidateFilter {
	page, limit := f.GetPage()
	return dbmodels.CandidateFilter{
		Status: models.CandidateStatus(f.Status),
		Search: strings.TrimSpace(f.Search),
		Page:   page,
		Limit:  limit,
	}
}

type StatusData struct {
	Status string `json:"status"`
}

func (s StatusData) Validate() error {
	_, err := models.ParseCandidateStatus(s.Status)
	return err
}

type ReconcileView struct {
	Created int    `json:"created"`
	Deleted int    `json:"deleted"`
	NoOp    bool   `json:"no_op"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

type NotificationView struct {
	Attempted bool   `json:"attempted"`
	Sent      bool   `json:"sent"`
	Error     string `json:"error,omitempty"`
}

type TransitionView struct {
	Candidate          CandidateView    `json:"candidate"`
	Tasks              ReconcileView    `json:"tasks"`
	Notification       NotificationView `json:"notification"`
	AccountEmailSynced bool             `json:"account_email_synced"`
}

type HistoryView struct {
	ID          string                  `json:"id"`
	Date        string                  `json:"date"`
	UserName    string                  `json:"user_name"`
	ActionType  dbmodels.ActionType     `json:"action_type"`
	Description string                  `json:"description"`
	Changes     []dbmodels.FieldChanges `json:"changes"`
}

func HistoryConvert(rec dbmodels.CandidateHistory) HistoryView {
	return HistoryView{
		ID:          rec.ID,
		Date:        rec.CreatedAt.Format("01/02/2006 15:04"),
		UserName:    rec.UserName,
		ActionType:  rec.ActionType,
		Description: rec.Changes.Description,
		Changes:     rec.Changes.Data,
	}
}
