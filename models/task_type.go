package models

type TaskType string

const (
	TaskTypeDocumentDownload TaskType = "DOCUMENT_DOWNLOAD"
	TaskTypeFortyHourCourse  TaskType = "FORTY_HOUR_COURSE_CERTIFICATE"
	TaskTypeSignature        TaskType = "SIGNATURE"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeDocumentDownload, TaskTypeFortyHourCourse, TaskTypeSignature:
		return true
	}
	return false
}

// RequiresUpload reports task types whose completion must carry a proof payload.
func (t TaskType) RequiresUpload() bool {
	return t == TaskTypeFortyHourCourse || t == TaskTypeSignature
}

type GateState string

const (
	GateOnboarding    GateState = "ONBOARDING"
	GateScheduleSetup GateState = "SCHEDULE_SETUP"
	GateMainDashboard GateState = "MAIN_DASHBOARD"
)
