// Package onboarding serves the hired candidate's onboarding checklist and
// routes them between onboarding, schedule setup and the main dashboard.
package onboarding

import (
	"context"
	"strings"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	candidatehistoryhandler "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate-history"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	pdfexport "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/export/pdf"
	filestorage "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/file-storage"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/gate"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	onboardingtaskstore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/task-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/schedule"
	initchecker "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/init-checker"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	onboardingapimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api/onboarding"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CandidateIDByUser(ctx context.Context, userID string) (string, error)
	GetDashboard(ctx context.Context, candidateID string) (onboardingapimodels.DashboardView, error)
	CompleteTask(ctx context.Context, candidateID, taskID string, data onboardingapimodels.CompleteTaskData) (onboardingapimodels.DashboardView, error)
	ChecklistPdf(ctx context.Context, candidateID string) ([]byte, error)
}

var Instance Provider

func NewHandler(companyName string) {
	initchecker.CheckInit(
		"reconciler", reconciler.Instance,
		"schedule", schedule.Instance,
		"fileStorage", filestorage.Instance,
		"history", candidatehistoryhandler.Instance,
	)
	Instance = NewInstance(
		companyName,
		candidatestore.NewInstance(db.DB),
		onboardingtaskstore.NewInstance(db.DB),
		reconciler.Instance,
		schedule.Instance,
		filestorage.Instance,
		candidatehistoryhandler.Instance,
	)
}

func NewInstance(
	companyName string,
	candidateStore candidatestore.Provider,
	taskStore onboardingtaskstore.Provider,
	taskReconciler reconciler.Provider,
	scheduleProvider schedule.Provider,
	fileStorage filestorage.Provider,
	history candidatehistoryhandler.Provider,
) Provider {
	return impl{
		companyName:    companyName,
		candidateStore: candidateStore,
		taskStore:      taskStore,
		reconciler:     taskReconciler,
		schedule:       scheduleProvider,
		fileStorage:    fileStorage,
		history:        history,
	}
}

type impl struct {
	companyName    string
	candidateStore candidatestore.Provider
	taskStore      onboardingtaskstore.Provider
	reconciler     reconciler.Provider
	schedule       schedule.Provider
	fileStorage    filestorage.Provider
	history        candidatehistoryhandler.Provider
}

func (i impl) CandidateIDByUser(ctx context.Context, userID string) (string, error) {
	rec, err := i.candidateStore.GetByUserID(ctx, userID)
	if err != nil {
		return "", models.NewPersistenceError(err, "failed to load candidate")
	}
	if rec == nil {
		return "", models.NewNotFoundError("candidate profile not found")
	}
	return rec.ID, nil
}

func (i impl) GetDashboard(ctx context.Context, candidateID string) (onboardingapimodels.DashboardView, error) {
	logger := log.WithField("candidate_id", candidateID)
	candidate, err := i.getHiredCandidate(ctx, candidateID)
	if err != nil {
		return onboardingapimodels.DashboardView{}, err
	}

	// self-healing pass, the page still renders on failure
	_, err = i.reconciler.Reconcile(ctx, candidateID)
	if err != nil {
		logger.WithError(err).Warn("dashboard: onboarding task reconciliation failed")
	}

	tasks, err := i.taskStore.ListByCandidate(ctx, candidateID)
	if err != nil {
		logger.WithError(err).Error("dashboard: failed to load onboarding tasks")
		return onboardingapimodels.DashboardView{}, models.NewPersistenceError(err, "failed to load onboarding tasks")
	}

	scheduleCompleted, err := i.schedule.ScheduleCompleted(ctx, candidateID)
	if err != nil {
		logger.WithError(err).Warn("dashboard: schedule status unavailable, using stored flag")
		scheduleCompleted = candidate.ScheduleCompleted
	}

	allCompleted := tasks.AllCompleted()
	result := onboardingapimodels.DashboardView{
		CandidateID:       candidate.ID,
		FullName:          candidate.GetFullName(),
		Gate:              gate.Resolve(allCompleted, scheduleCompleted),
		AllTasksCompleted: allCompleted,
		ScheduleCompleted: scheduleCompleted,
		CompletedCount:    tasks.CompletedCount(),
		TotalCount:        len(tasks),
		Tasks:             make([]onboardingapimodels.TaskView, 0, len(tasks)),
	}
	for _, task := range tasks {
		view := onboardingapimodels.TaskConvert(task)
		if view.DocumentDownloadUrl != "" {
			link, err := i.fileStorage.DocumentLink(ctx, task.DocumentDownloadUrl)
			if err != nil {
				// the stored key still identifies the document
				logger.WithError(err).WithField("task_id", task.ID).Warn("dashboard: document link unavailable, keeping stored key")
				link = task.DocumentDownloadUrl
			}
			view.DocumentDownloadUrl = link
		}
		result.Tasks = append(result.Tasks, view)
	}
	return result, nil
}

// CompleteTask marks one task done. Tasks are completed in checklist order and
// upload tasks need a payload; repeating a completed task changes nothing.
func (i impl) CompleteTask(ctx context.Context, candidateID, taskID string, data onboardingapimodels.CompleteTaskData) (onboardingapimodels.DashboardView, error) {
	logger := log.WithField("candidate_id", candidateID).WithField("task_id", taskID)
	_, err := i.getHiredCandidate(ctx, candidateID)
	if err != nil {
		return onboardingapimodels.DashboardView{}, err
	}
	tasks, err := i.taskStore.ListByCandidate(ctx, candidateID)
	if err != nil {
		return onboardingapimodels.DashboardView{}, models.NewPersistenceError(err, "failed to load onboarding tasks")
	}

	var task *dbmodels.OnboardingTask
	for idx := range tasks {
		if tasks[idx].ID == taskID {
			task = &tasks[idx]
			break
		}
	}
	if task == nil {
		return onboardingapimodels.DashboardView{}, models.NewNotFoundError("onboarding task not found")
	}
	if task.IsCompleted {
		return i.GetDashboard(ctx, candidateID)
	}
	for _, prev := range tasks {
		if prev.SortOrder < task.SortOrder && !prev.IsCompleted {
			return onboardingapimodels.DashboardView{}, models.NewValidationError("complete the previous onboarding tasks first")
		}
	}
	uploadURL := strings.TrimSpace(data.UploadUrl)
	if task.TaskType.RequiresUpload() && uploadURL == "" {
		return onboardingapimodels.DashboardView{}, models.NewValidationError("this task requires an upload")
	}

	updMap := map[string]interface{}{
		"is_completed": true,
		"completed_at": time.Now(),
	}
	if uploadURL != "" {
		updMap["upload_url"] = uploadURL
	}
	err = i.taskStore.Update(ctx, task.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to complete onboarding task")
		return onboardingapimodels.DashboardView{}, models.NewPersistenceError(err, "failed to complete onboarding task")
	}
	i.history.Save(ctx, candidateID, "", dbmodels.HistoryTypeTaskDone, dbmodels.EntityChanges{
		Description: "Onboarding task completed: " + task.Title,
		Data: []dbmodels.FieldChanges{
			{
				Field:    "is_completed",
				OldValue: false,
				NewValue: true,
			},
		},
	})
	return i.GetDashboard(ctx, candidateID)
}

func (i impl) ChecklistPdf(ctx context.Context, candidateID string) ([]byte, error) {
	candidate, err := i.getHiredCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	tasks, err := i.taskStore.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, models.NewPersistenceError(err, "failed to load onboarding tasks")
	}
	file, err := pdfexport.GenerateOnboardingChecklist(i.companyName, *candidate, tasks)
	if err != nil {
		log.WithError(err).WithField("candidate_id", candidateID).Error("failed to render onboarding checklist")
		return nil, models.WrapAppError(models.PersistenceError, err, "failed to render onboarding checklist")
	}
	return file, nil
}

func (i impl) getHiredCandidate(ctx context.Context, candidateID string) (*dbmodels.Candidate, error) {
	candidate, err := i.candidateStore.GetByID(ctx, candidateID)
	if err != nil {
		return nil, models.NewPersistenceError(err, "failed to load candidate")
	}
	if candidate == nil {
		return nil, models.NewNotFoundError("candidate not found")
	}
	if !candidate.IsHired() {
		return nil, models.NewValidationError("onboarding is available to hired candidates only")
	}
	return candidate, nil
}
