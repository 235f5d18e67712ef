// Package reconcileworker periodically repairs the onboarding tasks of every
// hired candidate, so drift is fixed even for candidates nobody opens.
package reconcileworker

import (
	"context"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/onboarding/reconciler"
	baseworker "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/base-worker"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/utils/helpers"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
)

const pageSize = 100

// StartWorker does nothing when interval is not positive.
func StartWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	i := newWorker(candidatestore.NewInstance(db.DB), reconciler.Instance, interval)
	go i.Run(ctx, i.handle)
}

func newWorker(candidateStore candidatestore.Provider, taskReconciler reconciler.Provider, interval time.Duration) *impl {
	return &impl{
		BaseImpl:       baseworker.NewInstance("OnboardingReconcileWorker", 30*time.Second, interval),
		candidateStore: candidateStore,
		reconciler:     taskReconciler,
	}
}

type impl struct {
	*baseworker.BaseImpl
	candidateStore candidatestore.Provider
	reconciler     reconciler.Provider
}

type sweepStats struct {
	checked  int
	repaired int
	failed   int
}

func (i impl) handle(ctx context.Context) {
	stats := i.sweep(ctx)
	i.GetLogger().
		WithField("checked", stats.checked).
		WithField("repaired", stats.repaired).
		WithField("failed", stats.failed).
		Info("onboarding reconcile sweep finished")
}

func (i impl) sweep(ctx context.Context) sweepStats {
	logger := i.GetLogger()
	stats := sweepStats{}
	filter := dbmodels.CandidateFilter{
		Status: models.CandidateStatusHired,
		Page:   1,
		Limit:  pageSize,
	}
	for {
		if helpers.IsContextDone(ctx) {
			return stats
		}
		list, err := i.candidateStore.List(ctx, filter)
		if err != nil {
			logger.WithError(err).Error("failed to list hired candidates")
			return stats
		}
		for _, candidate := range list {
			if helpers.IsContextDone(ctx) {
				return stats
			}
			stats.checked++
			result, err := i.reconciler.Reconcile(ctx, candidate.ID)
			if err != nil {
				stats.failed++
				logger.WithError(err).WithField("candidate_id", candidate.ID).Warn("onboarding reconcile failed")
				continue
			}
			if !result.NoOp {
				stats.repaired++
			}
		}
		if len(list) < pageSize {
			return stats
		}
		filter.Page++
	}
}
