// Package reconciler keeps a hired candidate's onboarding tasks equal to the
// canonical task set. It runs inline on every read and write path that touches
// a candidate and converges by replacing drifted sets.
package reconciler

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/metrics"
	onboardingtaskstore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/task-store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/taskset"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Result struct {
	Created int
	Deleted int
	NoOp    bool
	Reason  DriftReason
}

type Provider interface {
	Reconcile(ctx context.Context, candidateID string) (Result, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(candidatestore.NewInstance(db.DB), onboardingtaskstore.NewInstance(db.DB))
}

func NewInstance(candidateStore candidatestore.Provider, taskStore onboardingtaskstore.Provider) Provider {
	return impl{
		candidateStore: candidateStore,
		taskStore:      taskStore,
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	taskStore      onboardingtaskstore.Provider
}

func (i impl) Reconcile(ctx context.Context, candidateID string) (Result, error) {
	logger := log.WithField("candidate_id", candidateID)

	candidate, err := i.candidateStore.GetByID(ctx, candidateID)
	if err != nil {
		metrics.ReconcileTotal.WithLabelValues("failed").Inc()
		logger.WithError(err).Error("reconcile: failed to load candidate")
		return Result{}, models.NewPersistenceError(err, "failed to load candidate")
	}
	if candidate == nil {
		return Result{}, models.NewNotFoundError("candidate not found")
	}
	if !candidate.IsHired() {
		metrics.ReconcileTotal.WithLabelValues("not_hired").Inc()
		return Result{NoOp: true}, nil
	}

	existing, err := i.taskStore.ListByCandidate(ctx, candidateID)
	if err != nil {
		metrics.ReconcileTotal.WithLabelValues("failed").Inc()
		logger.WithError(err).Error("reconcile: failed to load onboarding tasks")
		return Result{}, models.NewPersistenceError(err, "failed to load onboarding tasks")
	}

	plan := BuildPlan(existing, candidate.FortyHourCourseCompleted)
	if plan.IsNoOp() {
		metrics.ReconcileTotal.WithLabelValues("no_op").Inc()
		return Result{NoOp: true}, nil
	}
	logger = logger.
		WithField("reason", plan.Reason).
		WithField("existing_count", len(existing)).
		WithField("expected_count", plan.ExpectCount)
	logger.Info("reconcile: onboarding task set drifted, rebuilding")

	result := Result{Reason: plan.Reason}
	if plan.DeleteAll {
		// completion progress on the stale set is discarded
		result.Deleted, err = i.taskStore.DeleteByCandidate(ctx, candidateID)
		if err != nil {
			metrics.ReconcileTotal.WithLabelValues("failed").Inc()
			logger.WithError(err).Error("reconcile: failed to delete stale onboarding tasks")
			return result, models.NewPersistenceError(err, "failed to delete stale onboarding tasks")
		}
		metrics.ReconcileTasksWritten.WithLabelValues("deleted").Add(float64(result.Deleted))
	}

	result.Created, err = i.createAll(ctx, candidateID, plan.Create, logger)
	metrics.ReconcileTasksWritten.WithLabelValues("created").Add(float64(result.Created))
	if err != nil {
		metrics.ReconcileTotal.WithLabelValues("partial").Inc()
		return result, err
	}
	metrics.ReconcileTotal.WithLabelValues("repaired").Inc()
	return result, nil
}

// createAll writes every task independently. Failed writes are not rolled back;
// the next pass sees the count mismatch and rebuilds the set.
func (i impl) createAll(ctx context.Context, candidateID string, list []taskset.TaskDescriptor, logger *log.Entry) (int, error) {
	created := 0
	failed := 0
	var lastErr error
	for _, descriptor := range list {
		rec := dbmodels.OnboardingTask{
			CandidateID:         candidateID,
			TaskType:            descriptor.TaskType,
			Title:               descriptor.Title,
			Description:         descriptor.Description,
			DocumentDownloadUrl: descriptor.DocumentKey,
			SortOrder:           descriptor.SortOrder,
		}
		_, err := i.taskStore.Create(ctx, rec)
		if err != nil {
			failed++
			lastErr = err
			logger.
				WithError(err).
				WithField("sort_order", descriptor.SortOrder).
				Error("reconcile: failed to create onboarding task")
			continue
		}
		created++
	}
	if failed > 0 {
		return created, models.NewPersistenceError(
			errors.Wrapf(lastErr, "%d of %d task writes failed", failed, len(list)),
			"onboarding tasks were only partially created")
	}
	return created, nil
}
