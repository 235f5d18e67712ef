// Package taskset holds the canonical onboarding catalog. It is the only place
// that decides which tasks a hired candidate must complete.
package taskset

import (
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
)

type TaskDescriptor struct {
	TaskType    models.TaskType
	Title       string
	Description string
	DocumentKey string // object key of the downloadable document, empty for non-document tasks
	SortOrder   int
}

var documentCatalog = []TaskDescriptor{
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Employee Handbook",
		Description: "Download and read the employee handbook.",
		DocumentKey: "onboarding/employee-handbook.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "HIPAA Privacy and Confidentiality Policy",
		Description: "Review how client health information must be handled and protected.",
		DocumentKey: "onboarding/hipaa-confidentiality-policy.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Code of Ethics and Professional Conduct",
		Description: "Review the RBT ethics code and the company conduct standards.",
		DocumentKey: "onboarding/code-of-ethics.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Mandated Reporter Policy",
		Description: "Review your obligations as a mandated reporter.",
		DocumentKey: "onboarding/mandated-reporter-policy.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Crisis and Safety Procedures",
		Description: "Review the procedures for crisis situations during sessions.",
		DocumentKey: "onboarding/crisis-safety-procedures.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Session Documentation Guidelines",
		Description: "Review how session notes and data sheets must be completed.",
		DocumentKey: "onboarding/session-documentation-guidelines.pdf",
	},
	{
		TaskType:    models.TaskTypeDocumentDownload,
		Title:       "Attendance and Cancellation Policy",
		Description: "Review the attendance, time off and session cancellation rules.",
		DocumentKey: "onboarding/attendance-cancellation-policy.pdf",
	},
}

var courseTask = TaskDescriptor{
	TaskType:    models.TaskTypeFortyHourCourse,
	Title:       "Complete the 40-Hour RBT Course",
	Description: "Complete the 40-hour RBT training course and upload your certificate of completion.",
}

var signatureTask = TaskDescriptor{
	TaskType:    models.TaskTypeSignature,
	Title:       "Sign Onboarding Acknowledgement",
	Description: "Confirm that you have read all onboarding documents and sign the acknowledgement.",
}

// CanonicalTasks returns the ordered task list for a hired candidate.
// SortOrder is dense starting at 1.
func CanonicalTasks(fortyHourCourseCompleted bool) []TaskDescriptor {
	result := make([]TaskDescriptor, 0, ExpectedCount(fortyHourCourseCompleted))
	result = append(result, documentCatalog...)
	if RequiresCourseTask(fortyHourCourseCompleted) {
		result = append(result, courseTask)
	}
	result = append(result, signatureTask)
	for idx := range result {
		result[idx].SortOrder = idx + 1
	}
	return result
}

func RequiresCourseTask(fortyHourCourseCompleted bool) bool {
	return !fortyHourCourseCompleted
}

func ExpectedCount(fortyHourCourseCompleted bool) int {
	count := len(documentCatalog) + 1
	if RequiresCourseTask(fortyHourCourseCompleted) {
		count++
	}
	return count
}
