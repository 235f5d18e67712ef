package dbmodels

type CandidateHistory struct {
	BaseModel
	CandidateID string        `gorm:"type:varchar(36);index"`
	UserID      *string       `gorm:"type:varchar(36)"`
	UserName    string        `gorm:"type:varchar(255)"`
	ActionType  ActionType    `gorm:"type:varchar(50)"`
	Changes     EntityChanges `gorm:"type:jsonb"`
}

type ActionType string

const (
	HistoryTypeAdded       ActionType = "added"        // candidate created at intake
	HistoryTypeUpdate      ActionType = "update"       // profile fields changed
	HistoryTypeStageChange ActionType = "stage_change" // pipeline status changed
	HistoryTypeHire        ActionType = "hire"
	HistoryTypeReject      ActionType = "reject"
	HistoryTypeTaskDone    ActionType = "task_done" // onboarding task completed
)
